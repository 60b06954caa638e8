package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a catalog from a YAML descriptor document of the form:
//
//	string:
//	  - name: required
//	    kind: boolean
//	    label: Required
//	  - name: pattern
//	    kind: text
//	    label: Pattern
//	    placeholder: regular expression
//
// Hosts that ship extended rule sets load them here once at startup; the
// resulting catalog is read-only afterwards. Descriptors are validated:
// every rule needs a non-empty name and a declared kind, and names must be
// unique within their data type.
func FromYAML(data []byte) (*Catalog, error) {
	var doc map[string][]RuleDescriptor
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if len(doc) == 0 {
		return nil, errors.New("catalog: descriptor document is empty")
	}
	for dataType, rules := range doc {
		seen := make(map[string]struct{}, len(rules))
		for _, d := range rules {
			if d.Name == "" {
				return nil, fmt.Errorf("catalog: %s: rule with empty name", dataType)
			}
			if !d.Kind.Valid() {
				return nil, fmt.Errorf("catalog: %s/%s: unknown kind %q", dataType, d.Name, d.Kind)
			}
			if _, dup := seen[d.Name]; dup {
				return nil, fmt.Errorf("catalog: %s: duplicate rule %q", dataType, d.Name)
			}
			seen[d.Name] = struct{}{}
		}
	}
	return &Catalog{rules: doc}, nil
}
