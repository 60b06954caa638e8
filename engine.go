package schemaforge

import "github.com/schemaforge/schemaforge/catalog"

// Engine answers structural queries and mutations over a field forest. Every
// mutation is copy-on-write: the input forest is never touched, and the
// result shares all subtrees outside the edited spine with it.
//
// Misuse is deliberately lenient. Inserting under a leaf field, addressing a
// path that does not resolve, toggling a rule the catalog does not define:
// each returns the forest unchanged instead of failing. Callers are trusted
// to request structurally valid edits; the engine degrades gracefully.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine returns an engine over the given rule catalog. A nil catalog
// selects catalog.Default().
func NewEngine(cat *catalog.Catalog) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{cat: cat}
}

// Catalog exposes the engine's read-only rule catalog.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// FieldPatch is the closed set of in-place field attributes an UpdateField
// command may change. Nil slots are left untouched. Structural attributes
// (type, children, rules) have their own commands.
type FieldPatch struct {
	DisplayName         *string
	UIExpanded          *bool
	UISelectedTypeToAdd *DataType
}

// insert attaches f under the parent addressed by parentPath. An empty
// parentPath appends to the top-level list. Object parents append to their
// properties; array parents without an item schema adopt f as the item
// schema; every other parent rejects the insert as a no-op.
func (e *Engine) insert(fields []Field, parentPath string, f Field) []Field {
	if f.ID == "" {
		f.ID = NewID()
	}
	if f.ValidationRules == nil {
		f.ValidationRules = e.defaultRules(f.DataType)
	}
	if parentPath == "" {
		out := make([]Field, len(fields), len(fields)+1)
		copy(out, fields)
		return append(out, f)
	}
	out, _ := rewrite(fields, splitPath(parentPath), func(parent Field) (Field, bool) {
		switch {
		case parent.DataType == TypeObject:
			props := make([]Field, len(parent.Properties), len(parent.Properties)+1)
			copy(props, parent.Properties)
			parent.Properties = append(props, f)
			return parent, true
		case parent.DataType == TypeArray && parent.ItemSchema == nil:
			item := f
			parent.ItemSchema = &item
			return parent, true
		default:
			return parent, false
		}
	})
	return out
}

// update applies a patch to the field addressed by path.
func (e *Engine) update(fields []Field, path string, patch FieldPatch) []Field {
	out, _ := rewrite(fields, splitPath(path), func(f Field) (Field, bool) {
		if patch.DisplayName != nil {
			f.DisplayName = *patch.DisplayName
		}
		if patch.UIExpanded != nil {
			f.UIExpanded = *patch.UIExpanded
		}
		if patch.UISelectedTypeToAdd != nil {
			f.UISelectedTypeToAdd = *patch.UISelectedTypeToAdd
		}
		return f, true
	})
	return out
}

// remove detaches the field addressed by path together with its subtree.
// A path ending in the itemSchema segment clears the owning array's item
// schema instead.
func (e *Engine) remove(fields []Field, path string) []Field {
	segs := splitPath(path)
	if len(segs) == 0 {
		return fields
	}
	if len(segs) == 1 {
		out, removed := filterByID(fields, segs[0])
		if !removed {
			return fields
		}
		return out
	}
	last := segs[len(segs)-1]
	if last == ItemSchemaSegment {
		out, _ := rewrite(fields, segs[:len(segs)-1], func(parent Field) (Field, bool) {
			if parent.DataType != TypeArray || parent.ItemSchema == nil {
				return parent, false
			}
			parent.ItemSchema = nil
			return parent, true
		})
		return out
	}
	out, _ := rewrite(fields, segs[:len(segs)-1], func(parent Field) (Field, bool) {
		if parent.DataType != TypeObject {
			return parent, false
		}
		props, removed := filterByID(parent.Properties, last)
		if !removed {
			return parent, false
		}
		parent.Properties = props
		return parent, true
	})
	return out
}

func filterByID(fields []Field, id string) ([]Field, bool) {
	out := make([]Field, 0, len(fields))
	removed := false
	for _, f := range fields {
		if f.ID == id {
			removed = true
			continue
		}
		out = append(out, f)
	}
	return out, removed
}

// setRule replaces the named rule entry on the field addressed by path.
// Enabling a rule without a configured value assigns the kind default from
// the catalog; disabling clears the value. Rules the catalog does not define
// for the field's current type are a no-op.
func (e *Engine) setRule(fields []Field, path, name string, enabled bool, value any) []Field {
	out, _ := rewrite(fields, splitPath(path), func(f Field) (Field, bool) {
		desc, ok := e.cat.Rule(string(f.DataType), name)
		if !ok {
			return f, false
		}
		idx := -1
		for i := range f.ValidationRules {
			if f.ValidationRules[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return f, false
		}
		rules := make([]ValidationRule, len(f.ValidationRules))
		copy(rules, f.ValidationRules)
		next := ValidationRule{Name: name, Enabled: enabled}
		if enabled {
			if value == nil {
				next.Value = desc.Kind.Zero()
			} else {
				next.Value = normalizeRuleValue(desc.Kind, value)
			}
		}
		rules[idx] = next
		f.ValidationRules = rules
		return f, true
	})
	return out
}

// normalizeRuleValue coerces number-kind values to float64 so that exported
// and session-persisted trees agree on representation.
func normalizeRuleValue(kind catalog.Kind, value any) any {
	if kind != catalog.KindNumber {
		return value
	}
	switch v := value.(type) {
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// changeType retypes the field addressed by path. The rule set is regenerated
// from the catalog for the new type with everything disabled, and any nested
// structure configured for the old type is discarded, not migrated.
func (e *Engine) changeType(fields []Field, path string, newType DataType) []Field {
	if !newType.Valid() {
		return fields
	}
	out, _ := rewrite(fields, splitPath(path), func(f Field) (Field, bool) {
		f.DataType = newType
		f.ValidationRules = e.defaultRules(newType)
		f.Properties = nil
		if newType == TypeObject {
			f.Properties = []Field{}
		}
		f.ItemSchema = nil
		return f, true
	})
	return out
}
