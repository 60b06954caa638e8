package schemaforge

// Package schemaforge provides:
//
// - An immutable, path-addressed schema tree engine (insert/update/remove/setRule/changeType)
// - A closed command set dispatched through Engine.Apply for a single no-op boundary
// - A pure export transform that strips UI state and emits enabled rules as a compact mapping
//
// Design policy:
// - Keep the tree model and engine in the root package; put hosting concerns under
//   workspace/, session/, clipboard/, jsonschema/, and editor/.
// - The validation-rule catalog lives in catalog/ and is consumed read-only.
// - Inapplicable edits return the forest unchanged; the engine never raises on misuse.
//
// Typical usage:
//
//	e := schemaforge.NewEngine(nil)
//	forest := e.Apply(nil, schemaforge.InsertField{Field: e.NewField("Email", schemaforge.TypeString)})
//	out, err := schemaforge.ExportJSON(forest)
