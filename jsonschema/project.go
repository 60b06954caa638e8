package jsonschema

import "github.com/schemaforge/schemaforge"

// Character-class requirements translate into conjoined pattern checks so the
// main pattern rule keeps its own slot.
var classPatterns = map[string]string{
	"has_symbols":   `[^A-Za-z0-9]`,
	"has_numbers":   `[0-9]`,
	"has_uppercase": `[A-Z]`,
	"has_lowercase": `[a-z]`,
}

// FromFields projects a field forest into a single object schema whose
// properties are keyed by display name. The `required` rule on a field
// surfaces in the parent's required list, matching JSON Schema semantics.
func FromFields(fields []schemaforge.Field) *Schema {
	root := &Schema{Type: "object"}
	if len(fields) == 0 {
		return root
	}
	root.Properties = make(map[string]*Schema, len(fields))
	for i := range fields {
		child, required := fromField(fields[i])
		root.Properties[fields[i].DisplayName] = child
		if required {
			root.Required = append(root.Required, fields[i].DisplayName)
		}
	}
	return root
}

func fromField(f schemaforge.Field) (*Schema, bool) {
	s := &Schema{Type: string(f.DataType)}
	required := false
	for _, r := range f.ValidationRules {
		if !r.Enabled {
			continue
		}
		switch r.Name {
		case "required":
			required = true
		case "min_length":
			if n, ok := ruleInt(r.Value); ok {
				s.MinLength = &n
			}
		case "max_length":
			if n, ok := ruleInt(r.Value); ok {
				s.MaxLength = &n
			}
		case "pattern":
			if p, ok := r.Value.(string); ok {
				s.Pattern = p
			}
		case "has_symbols", "has_numbers", "has_uppercase", "has_lowercase":
			s.AllOf = append(s.AllOf, &Schema{Pattern: classPatterns[r.Name]})
		case "min":
			if n, ok := ruleNumber(r.Value); ok {
				s.Minimum = &n
			}
		case "max":
			if n, ok := ruleNumber(r.Value); ok {
				s.Maximum = &n
			}
		case "integer_only":
			s.Type = "integer"
		case "positive_only":
			zero := 0.0
			s.ExclusiveMinimum = &zero
		case "must_be_true":
			s.Const = true
		case "min_items":
			if n, ok := ruleInt(r.Value); ok {
				s.MinItems = &n
			}
		case "max_items":
			if n, ok := ruleInt(r.Value); ok {
				s.MaxItems = &n
			}
		case "unique_items":
			s.UniqueItems = true
		}
	}
	switch f.DataType {
	case schemaforge.TypeObject:
		if len(f.Properties) > 0 {
			s.Properties = make(map[string]*Schema, len(f.Properties))
			for i := range f.Properties {
				child, childRequired := fromField(f.Properties[i])
				s.Properties[f.Properties[i].DisplayName] = child
				if childRequired {
					s.Required = append(s.Required, f.Properties[i].DisplayName)
				}
			}
		}
	case schemaforge.TypeArray:
		if f.ItemSchema != nil {
			item, _ := fromField(*f.ItemSchema)
			s.Items = item
		}
	}
	return s, required
}

func ruleNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func ruleInt(v any) (int, bool) {
	n, ok := ruleNumber(v)
	if !ok {
		return 0, false
	}
	return int(n), true
}
