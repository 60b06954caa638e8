// Package workspace maintains the ordered collection of named schemas an
// editing session works on, backed by an in-memory database.
package workspace

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/rs/xid"

	"github.com/schemaforge/schemaforge"
)

// Schema is one named field tree in the workspace. UpdatedAt is refreshed on
// every field mutation within the tree.
type Schema struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Fields    []schemaforge.Field `json:"fields"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// Persister is notified after every successful workspace mutation with the
// full schema list. Implementations must not fail the mutation; persistence
// problems are theirs to log and swallow.
type Persister interface {
	SaveWorkspace(schemas []Schema)
}

// Workspace owns the schema collection. Mutations go through the engine's
// copy-on-write commands, so a Schema handed out by Get or List is never
// changed behind the caller's back.
type Workspace struct {
	db        *memdb.MemDB
	engine    *schemaforge.Engine
	persister Persister
	now       func() time.Time
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithEngine overrides the default engine (and with it the rule catalog).
func WithEngine(e *schemaforge.Engine) Option {
	return func(w *Workspace) { w.engine = e }
}

// WithPersister installs the save-on-mutation hook.
func WithPersister(p Persister) Option {
	return func(w *Workspace) { w.persister = p }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

// New returns an empty workspace.
func New(opts ...Option) (*Workspace, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}
	w := &Workspace{
		db:     db,
		engine: schemaforge.NewEngine(nil),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Engine exposes the engine the workspace dispatches commands through.
func (w *Workspace) Engine() *schemaforge.Engine { return w.engine }

// CreateSchema adds an empty named schema and returns it.
func (w *Workspace) CreateSchema(name string) (Schema, error) {
	if err := validateSchemaName(name); err != nil {
		return Schema{}, err
	}
	now := w.now().UTC()
	sc := Schema{
		ID:        xid.New().String(),
		Name:      name,
		Fields:    []schemaforge.Field{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	txn := w.db.Txn(true)
	if err := txn.Insert(tblSchemas, &sc); err != nil {
		txn.Abort()
		return Schema{}, fmt.Errorf("insert schema: %w", err)
	}
	txn.Commit()
	w.persist()
	return sc, nil
}

// GetSchema returns the schema with the given ID.
func (w *Workspace) GetSchema(id string) (Schema, error) {
	txn := w.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(tblSchemas, "id", id)
	if err != nil {
		return Schema{}, fmt.Errorf("find schema: %w", err)
	}
	if raw == nil {
		return Schema{}, ErrSchemaNotFound
	}
	return *raw.(*Schema), nil
}

// ListSchemas returns all schemas ordered by creation time, oldest first.
func (w *Workspace) ListSchemas() ([]Schema, error) {
	txn := w.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tblSchemas, "id")
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}
	var out []Schema
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*Schema))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// RenameSchema changes a schema's display name.
func (w *Workspace) RenameSchema(id, name string) (Schema, error) {
	if err := validateSchemaName(name); err != nil {
		return Schema{}, err
	}
	return w.mutate(id, func(sc *Schema) {
		sc.Name = name
	})
}

// DeleteSchema removes a schema and its whole tree from the workspace.
func (w *Workspace) DeleteSchema(id string) error {
	txn := w.db.Txn(true)
	raw, err := txn.First(tblSchemas, "id", id)
	if err != nil {
		txn.Abort()
		return fmt.Errorf("find schema: %w", err)
	}
	if raw == nil {
		txn.Abort()
		return ErrSchemaNotFound
	}
	if err := txn.Delete(tblSchemas, raw); err != nil {
		txn.Abort()
		return fmt.Errorf("delete schema: %w", err)
	}
	txn.Commit()
	w.persist()
	return nil
}

// Apply dispatches one engine command against the schema's field tree and
// stores the resulting tree. Commands that do not apply still count as a
// mutation of nothing: the tree and UpdatedAt are left as they were.
func (w *Workspace) Apply(id string, cmd schemaforge.Command) (Schema, error) {
	current, err := w.GetSchema(id)
	if err != nil {
		return Schema{}, err
	}
	next := w.engine.Apply(current.Fields, cmd)
	if sameForest(current.Fields, next) {
		return current, nil
	}
	return w.mutate(id, func(sc *Schema) {
		sc.Fields = next
	})
}

// sameForest reports whether the engine returned the input forest unchanged,
// which is how no-op commands are signalled.
func sameForest(a, b []schemaforge.Field) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func (w *Workspace) mutate(id string, fn func(*Schema)) (Schema, error) {
	txn := w.db.Txn(true)
	raw, err := txn.First(tblSchemas, "id", id)
	if err != nil {
		txn.Abort()
		return Schema{}, fmt.Errorf("find schema: %w", err)
	}
	if raw == nil {
		txn.Abort()
		return Schema{}, ErrSchemaNotFound
	}
	sc := *raw.(*Schema)
	fn(&sc)
	sc.UpdatedAt = w.now().UTC()
	if err := txn.Insert(tblSchemas, &sc); err != nil {
		txn.Abort()
		return Schema{}, fmt.Errorf("update schema: %w", err)
	}
	txn.Commit()
	w.persist()
	return sc, nil
}

// Load replaces the whole collection, typically with schemas rehydrated from
// session persistence at startup. The persister is not notified; loading is
// not a mutation.
func (w *Workspace) Load(schemas []Schema) error {
	txn := w.db.Txn(true)
	if _, err := txn.DeleteAll(tblSchemas, "id"); err != nil {
		txn.Abort()
		return fmt.Errorf("clear schemas: %w", err)
	}
	for i := range schemas {
		sc := schemas[i]
		if err := txn.Insert(tblSchemas, &sc); err != nil {
			txn.Abort()
			return fmt.Errorf("load schema %s: %w", sc.ID, err)
		}
	}
	txn.Commit()
	return nil
}

func (w *Workspace) persist() {
	if w.persister == nil {
		return
	}
	schemas, err := w.ListSchemas()
	if err != nil {
		return
	}
	w.persister.SaveWorkspace(schemas)
}
