package schemaforge

import "github.com/rs/xid"

// DataType enumerates the types a field can take.
type DataType string

const (
	TypeString  DataType = "string"
	TypeNumber  DataType = "number"
	TypeBoolean DataType = "boolean"
	TypeArray   DataType = "array"
	TypeObject  DataType = "object"
)

// Valid reports whether t is one of the five declared data types.
func (t DataType) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject:
		return true
	default:
		return false
	}
}

// Container reports whether a field of this type can own children.
func (t DataType) Container() bool {
	return t == TypeObject || t == TypeArray
}

// ValidationRule is one togglable constraint on a field. The rule set of a
// field always mirrors, entry for entry, the catalog list for the field's
// current data type; Value is nil while the rule is disabled.
type ValidationRule struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Value   any    `json:"value,omitempty"`
}

// Field is one node in a schema tree. Properties is populated only for object
// fields; ItemSchema only for array fields, and only once an item type has
// been chosen. The UI-prefixed attributes are presentation state: they travel
// with the field through edits and session persistence but never appear in
// the export output.
type Field struct {
	ID                  string           `json:"id"`
	DisplayName         string           `json:"displayName"`
	DataType            DataType         `json:"dataType"`
	ValidationRules     []ValidationRule `json:"validationRules"`
	Properties          []Field          `json:"properties,omitempty"`
	ItemSchema          *Field           `json:"itemSchema,omitempty"`
	UIExpanded          bool             `json:"uiExpanded"`
	UISelectedTypeToAdd DataType         `json:"uiSelectedTypeToAdd,omitempty"`
}

// NewID returns a fresh opaque field identifier. IDs are xid strings: unique,
// stable, free of '.' so they can be joined into paths, and never equal to
// the itemSchema path literal.
func NewID() string {
	return xid.New().String()
}

// NewField builds a field of the given type with the full disabled rule set
// for that type, expanded by default. The field is not yet attached anywhere;
// hand it to an InsertField command.
func (e *Engine) NewField(displayName string, dataType DataType) Field {
	return Field{
		ID:                  NewID(),
		DisplayName:         displayName,
		DataType:            dataType,
		ValidationRules:     e.defaultRules(dataType),
		UIExpanded:          true,
		UISelectedTypeToAdd: TypeString,
	}
}

func (e *Engine) defaultRules(dataType DataType) []ValidationRule {
	descs := e.cat.RulesFor(string(dataType))
	rules := make([]ValidationRule, 0, len(descs))
	for _, d := range descs {
		rules = append(rules, ValidationRule{Name: d.Name})
	}
	return rules
}
