package workspace

import (
	json "github.com/goccy/go-json"

	"github.com/schemaforge/schemaforge"
)

// ExportedSchema pairs a schema's name with the export form of its tree.
type ExportedSchema struct {
	Name   string                      `json:"name"`
	Schema []schemaforge.ExportedField `json:"schema"`
}

// ExportSchema serializes one schema's field tree to compact export JSON.
func (w *Workspace) ExportSchema(id string) ([]byte, error) {
	sc, err := w.GetSchema(id)
	if err != nil {
		return nil, err
	}
	return schemaforge.ExportJSON(sc.Fields)
}

// ExportAll serializes every schema in listing order as an array of
// {name, schema} pairs.
func (w *Workspace) ExportAll() ([]byte, error) {
	schemas, err := w.ListSchemas()
	if err != nil {
		return nil, err
	}
	out := make([]ExportedSchema, 0, len(schemas))
	for _, sc := range schemas {
		out = append(out, ExportedSchema{
			Name:   sc.Name,
			Schema: schemaforge.Export(sc.Fields),
		})
	}
	return json.Marshal(out)
}
