package schemaforge

import "strings"

// ItemSchemaSegment is the literal path segment addressing the item schema of
// an array field. Field IDs are xid strings and can never collide with it, so
// a path like "a1b2.itemSchema.c3d4" is unambiguous: it names the field c3d4
// inside the properties of a1b2's item schema.
const ItemSchemaSegment = "itemSchema"

const pathSeparator = "."

// JoinPath concatenates path segments with the path separator.
func JoinPath(segments ...string) string {
	return strings.Join(segments, pathSeparator)
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, pathSeparator)
}

// Lookup resolves a path against the forest and returns the addressed field.
// The boolean result is false when any segment fails to resolve.
func Lookup(fields []Field, path string) (Field, bool) {
	return lookup(fields, splitPath(path))
}

func lookup(fields []Field, segs []string) (Field, bool) {
	if len(segs) == 0 {
		return Field{}, false
	}
	for i := range fields {
		if fields[i].ID != segs[0] {
			continue
		}
		if len(segs) == 1 {
			return fields[i], true
		}
		return lookupIn(fields[i], segs[1:])
	}
	return Field{}, false
}

// lookupIn resolves the remaining segments below an already-matched field.
func lookupIn(f Field, segs []string) (Field, bool) {
	if segs[0] == ItemSchemaSegment {
		if f.DataType != TypeArray || f.ItemSchema == nil {
			return Field{}, false
		}
		if len(segs) == 1 {
			return *f.ItemSchema, true
		}
		return lookupIn(*f.ItemSchema, segs[1:])
	}
	if f.DataType != TypeObject {
		return Field{}, false
	}
	return lookup(f.Properties, segs)
}

// rewrite returns a copy of the forest in which the field addressed by segs
// has been replaced by fn's result, with every ancestor on the path freshly
// allocated and all untouched siblings shared with the input. When the path
// does not resolve, or fn vetoes by returning false, the input slice is
// returned as-is so callers can treat the operation as a no-op.
func rewrite(fields []Field, segs []string, fn func(Field) (Field, bool)) ([]Field, bool) {
	if len(segs) == 0 {
		return fields, false
	}
	for i := range fields {
		if fields[i].ID != segs[0] {
			continue
		}
		var next Field
		var ok bool
		if len(segs) == 1 {
			next, ok = fn(fields[i])
		} else {
			next, ok = rewriteIn(fields[i], segs[1:], fn)
		}
		if !ok {
			return fields, false
		}
		out := make([]Field, len(fields))
		copy(out, fields)
		out[i] = next
		return out, true
	}
	return fields, false
}

// rewriteIn is the single-field arm of rewrite; f is received by value, so
// assigning to its slots updates a copy while the original node is shared
// with the old forest.
func rewriteIn(f Field, segs []string, fn func(Field) (Field, bool)) (Field, bool) {
	if segs[0] == ItemSchemaSegment {
		if f.DataType != TypeArray || f.ItemSchema == nil {
			return f, false
		}
		var next Field
		var ok bool
		if len(segs) == 1 {
			next, ok = fn(*f.ItemSchema)
		} else {
			next, ok = rewriteIn(*f.ItemSchema, segs[1:], fn)
		}
		if !ok {
			return f, false
		}
		f.ItemSchema = &next
		return f, true
	}
	if f.DataType != TypeObject {
		return f, false
	}
	props, ok := rewrite(f.Properties, segs, fn)
	if !ok {
		return f, false
	}
	f.Properties = props
	return f, true
}
