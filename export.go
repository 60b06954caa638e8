package schemaforge

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// ExportedField is the UI-state-free projection of a Field. IDs, expansion
// state, and the pending add-type selection are dropped; validation rules are
// rewritten into an enabled-only name-to-value mapping serialized in the
// field's rule order, so exporting the same forest twice yields identical
// bytes.
type ExportedField struct {
	DisplayName string
	DataType    DataType
	Rules       []ExportedRule
	Properties  []ExportedField
	ItemSchema  *ExportedField
}

// ExportedRule is one enabled rule in export form.
type ExportedRule struct {
	Name  string
	Value any
}

// Export projects a forest into its export form. The transform is pure and
// total: any well-formed forest produces a JSON-compatible value.
func Export(fields []Field) []ExportedField {
	out := make([]ExportedField, 0, len(fields))
	for i := range fields {
		out = append(out, exportField(fields[i]))
	}
	return out
}

func exportField(f Field) ExportedField {
	ef := ExportedField{
		DisplayName: f.DisplayName,
		DataType:    f.DataType,
		Rules:       make([]ExportedRule, 0, len(f.ValidationRules)),
	}
	for _, r := range f.ValidationRules {
		if !r.Enabled {
			continue
		}
		value := r.Value
		if value == nil {
			// Enabled boolean toggles carry no configured value slot.
			value = true
		}
		ef.Rules = append(ef.Rules, ExportedRule{Name: r.Name, Value: value})
	}
	if f.DataType == TypeObject {
		ef.Properties = Export(f.Properties)
	}
	if f.DataType == TypeArray && f.ItemSchema != nil {
		item := exportField(*f.ItemSchema)
		ef.ItemSchema = &item
	}
	return ef
}

// ExportJSON serializes the export form of the forest to compact JSON.
func ExportJSON(fields []Field) ([]byte, error) {
	return json.Marshal(Export(fields))
}

// ExportJSONIndent serializes the export form of the forest with indentation
// for display surfaces such as live previews.
func ExportJSONIndent(fields []Field, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(Export(fields), prefix, indent)
}

// MarshalJSON writes the export object with a fixed key order and rules in
// list order, keeping repeated exports byte-identical.
func (f ExportedField) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"displayName":`)
	if err := writeJSON(&b, f.DisplayName); err != nil {
		return nil, err
	}
	b.WriteString(`,"dataType":`)
	if err := writeJSON(&b, string(f.DataType)); err != nil {
		return nil, err
	}
	b.WriteString(`,"validationRules":{`)
	for i, r := range f.Rules {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeJSON(&b, r.Name); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := writeJSON(&b, r.Value); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')
	if f.DataType == TypeObject {
		props := f.Properties
		if props == nil {
			props = []ExportedField{}
		}
		b.WriteString(`,"properties":`)
		if err := writeJSON(&b, props); err != nil {
			return nil, err
		}
	}
	if f.ItemSchema != nil {
		b.WriteString(`,"itemSchema":`)
		if err := writeJSON(&b, *f.ItemSchema); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(raw)
	return nil
}
