package schemaforge

// Command is the closed set of forest mutations. Hosts dispatch intents as
// commands through Engine.Apply rather than merging open-ended patches, which
// keeps the no-op boundary in one place.
type Command interface {
	isCommand()
}

// InsertField attaches Field under ParentPath. An empty ParentPath targets
// the top-level list.
type InsertField struct {
	ParentPath string
	Field      Field
}

// UpdateField patches presentation attributes of the field at Path.
type UpdateField struct {
	Path  string
	Patch FieldPatch
}

// RemoveField detaches the field at Path together with its whole subtree.
type RemoveField struct {
	Path string
}

// SetRule toggles or reconfigures the named validation rule on the field at
// Path. Value may be nil when enabling; the catalog kind default applies.
type SetRule struct {
	Path    string
	Name    string
	Enabled bool
	Value   any
}

// ChangeType retypes the field at Path, resetting its rules and children.
type ChangeType struct {
	Path string
	Type DataType
}

func (InsertField) isCommand() {}
func (UpdateField) isCommand() {}
func (RemoveField) isCommand() {}
func (SetRule) isCommand()     {}
func (ChangeType) isCommand()  {}

// Apply executes one command against the forest and returns the resulting
// forest. The input is never mutated; commands that do not apply return it
// unchanged.
func (e *Engine) Apply(fields []Field, cmd Command) []Field {
	switch c := cmd.(type) {
	case InsertField:
		return e.insert(fields, c.ParentPath, c.Field)
	case UpdateField:
		return e.update(fields, c.Path, c.Patch)
	case RemoveField:
		return e.remove(fields, c.Path)
	case SetRule:
		return e.setRule(fields, c.Path, c.Name, c.Enabled, c.Value)
	case ChangeType:
		return e.changeType(fields, c.Path, c.Type)
	default:
		return fields
	}
}
