// Package catalog holds the static validation-rule catalog: for every data
// type, the ordered list of rules a field of that type may carry. The engine
// treats a Catalog as a read-only lookup table; it drives both the rule set a
// newly created or retyped field is initialized with and the rules the export
// transform may emit.
package catalog

// Kind is the value kind a rule's configured value must have.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Valid reports whether k is one of the three declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindNumber, KindBoolean:
		return true
	default:
		return false
	}
}

// Zero returns the default value assigned when a rule of this kind is enabled
// without an explicit value: "" for text, 0 for number, true for boolean.
// Boolean rules are pure toggles; enabling one is asserting it, so the
// enable-time default is true rather than false.
func (k Kind) Zero() any {
	switch k {
	case KindNumber:
		return float64(0)
	case KindBoolean:
		return true
	default:
		return ""
	}
}

// RuleDescriptor describes one rule within the catalog entry for a data type.
type RuleDescriptor struct {
	Name        string `yaml:"name"`
	Kind        Kind   `yaml:"kind"`
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// Catalog maps data-type names to their ordered rule descriptor lists.
type Catalog struct {
	rules map[string][]RuleDescriptor
}

// RulesFor returns a copy of the ordered descriptor list for the given data
// type. Unknown types yield an empty list.
func (c *Catalog) RulesFor(dataType string) []RuleDescriptor {
	src := c.rules[dataType]
	out := make([]RuleDescriptor, len(src))
	copy(out, src)
	return out
}

// Rule looks up a single descriptor by data type and rule name.
func (c *Catalog) Rule(dataType, name string) (RuleDescriptor, bool) {
	for _, d := range c.rules[dataType] {
		if d.Name == name {
			return d, true
		}
	}
	return RuleDescriptor{}, false
}

// Default returns the built-in catalog. The content is fixed; callers must
// not assume they can grow a field's rule set beyond what is listed here.
func Default() *Catalog {
	return &Catalog{rules: map[string][]RuleDescriptor{
		"string": {
			{Name: "required", Kind: KindBoolean, Label: "Required"},
			{Name: "min_length", Kind: KindNumber, Label: "Min Length", Placeholder: "e.g. 3"},
			{Name: "max_length", Kind: KindNumber, Label: "Max Length", Placeholder: "e.g. 64"},
			{Name: "pattern", Kind: KindText, Label: "Pattern", Placeholder: "regular expression"},
			{Name: "has_symbols", Kind: KindBoolean, Label: "Has Symbols"},
			{Name: "has_numbers", Kind: KindBoolean, Label: "Has Numbers"},
			{Name: "has_uppercase", Kind: KindBoolean, Label: "Has Uppercase"},
			{Name: "has_lowercase", Kind: KindBoolean, Label: "Has Lowercase"},
		},
		"number": {
			{Name: "required", Kind: KindBoolean, Label: "Required"},
			{Name: "min", Kind: KindNumber, Label: "Min", Placeholder: "e.g. 0"},
			{Name: "max", Kind: KindNumber, Label: "Max", Placeholder: "e.g. 100"},
			{Name: "integer_only", Kind: KindBoolean, Label: "Integer Only"},
			{Name: "positive_only", Kind: KindBoolean, Label: "Positive Only"},
		},
		"boolean": {
			{Name: "required", Kind: KindBoolean, Label: "Required"},
			{Name: "must_be_true", Kind: KindBoolean, Label: "Must Be True"},
		},
		"array": {
			{Name: "required", Kind: KindBoolean, Label: "Required"},
			{Name: "min_items", Kind: KindNumber, Label: "Min Items", Placeholder: "e.g. 1"},
			{Name: "max_items", Kind: KindNumber, Label: "Max Items", Placeholder: "e.g. 10"},
			{Name: "unique_items", Kind: KindBoolean, Label: "Unique Items"},
		},
		"object": {
			{Name: "required", Kind: KindBoolean, Label: "Required"},
		},
	}}
}
