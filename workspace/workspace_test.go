package workspace_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sf "github.com/schemaforge/schemaforge"
	"github.com/schemaforge/schemaforge/workspace"
)

type recordingPersister struct {
	saves [][]workspace.Schema
}

func (p *recordingPersister) SaveWorkspace(schemas []workspace.Schema) {
	p.saves = append(p.saves, schemas)
}

// tickingClock returns a clock that advances one second per call, so
// UpdatedAt comparisons never race real time.
func tickingClock() func() time.Time {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func TestCreateGetDelete(t *testing.T) {
	ws, err := workspace.New()
	require.NoError(t, err)

	sc, err := ws.CreateSchema("User Profile")
	require.NoError(t, err)
	assert.NotEmpty(t, sc.ID)
	assert.Equal(t, "User Profile", sc.Name)
	assert.NotNil(t, sc.Fields)
	assert.Empty(t, sc.Fields)

	got, err := ws.GetSchema(sc.ID)
	require.NoError(t, err)
	assert.Equal(t, sc.ID, got.ID)

	require.NoError(t, ws.DeleteSchema(sc.ID))
	_, err = ws.GetSchema(sc.ID)
	assert.ErrorIs(t, err, workspace.ErrSchemaNotFound)
	assert.ErrorIs(t, ws.DeleteSchema(sc.ID), workspace.ErrSchemaNotFound)
}

func TestSchemaNameValidation(t *testing.T) {
	ws, err := workspace.New()
	require.NoError(t, err)

	_, err = ws.CreateSchema("")
	assert.ErrorIs(t, err, workspace.ErrInvalidName)

	_, err = ws.CreateSchema(strings.Repeat("x", 256))
	assert.ErrorIs(t, err, workspace.ErrInvalidName)

	sc, err := ws.CreateSchema("ok")
	require.NoError(t, err)
	_, err = ws.RenameSchema(sc.ID, "")
	assert.ErrorIs(t, err, workspace.ErrInvalidName)
}

func TestListSchemas_Order(t *testing.T) {
	ws, err := workspace.New(workspace.WithClock(tickingClock()))
	require.NoError(t, err)

	first, err := ws.CreateSchema("first")
	require.NoError(t, err)
	second, err := ws.CreateSchema("second")
	require.NoError(t, err)
	third, err := ws.CreateSchema("third")
	require.NoError(t, err)

	schemas, err := ws.ListSchemas()
	require.NoError(t, err)
	require.Len(t, schemas, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{schemas[0].ID, schemas[1].ID, schemas[2].ID})
}

func TestApply_BumpsUpdatedAt(t *testing.T) {
	ws, err := workspace.New(workspace.WithClock(tickingClock()))
	require.NoError(t, err)

	sc, err := ws.CreateSchema("s")
	require.NoError(t, err)

	field := ws.Engine().NewField("Email", sf.TypeString)
	after, err := ws.Apply(sc.ID, sf.InsertField{Field: field})
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(sc.UpdatedAt))
	require.Len(t, after.Fields, 1)
	assert.Equal(t, "Email", after.Fields[0].DisplayName)
}

func TestApply_NoOpKeepsTimestamps(t *testing.T) {
	ws, err := workspace.New(workspace.WithClock(tickingClock()))
	require.NoError(t, err)

	sc, err := ws.CreateSchema("s")
	require.NoError(t, err)

	// removing a field that does not exist is a silent no-op
	after, err := ws.Apply(sc.ID, sf.RemoveField{Path: "missing"})
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.Equal(sc.UpdatedAt))
}

func TestApply_UnknownSchema(t *testing.T) {
	ws, err := workspace.New()
	require.NoError(t, err)

	_, err = ws.Apply("nope", sf.RemoveField{Path: "x"})
	assert.ErrorIs(t, err, workspace.ErrSchemaNotFound)
}

func TestPersister_NotifiedOnMutations(t *testing.T) {
	p := &recordingPersister{}
	ws, err := workspace.New(workspace.WithPersister(p))
	require.NoError(t, err)

	sc, err := ws.CreateSchema("s")
	require.NoError(t, err)
	_, err = ws.RenameSchema(sc.ID, "renamed")
	require.NoError(t, err)
	field := ws.Engine().NewField("F", sf.TypeString)
	_, err = ws.Apply(sc.ID, sf.InsertField{Field: field})
	require.NoError(t, err)
	require.NoError(t, ws.DeleteSchema(sc.ID))

	require.Len(t, p.saves, 4)
	last := p.saves[len(p.saves)-1]
	assert.Empty(t, last)
}

func TestLoad_ReplacesCollectionSilently(t *testing.T) {
	p := &recordingPersister{}
	ws, err := workspace.New(workspace.WithPersister(p))
	require.NoError(t, err)

	_, err = ws.CreateSchema("stale")
	require.NoError(t, err)
	savesBefore := len(p.saves)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, ws.Load([]workspace.Schema{{
		ID:        "restored",
		Name:      "restored",
		Fields:    []sf.Field{},
		CreatedAt: now,
		UpdatedAt: now,
	}}))

	schemas, err := ws.ListSchemas()
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "restored", schemas[0].ID)
	assert.Len(t, p.saves, savesBefore, "loading is not a mutation")
}

func TestExportSchema(t *testing.T) {
	ws, err := workspace.New()
	require.NoError(t, err)

	sc, err := ws.CreateSchema("s")
	require.NoError(t, err)
	field := ws.Engine().NewField("Email", sf.TypeString)
	_, err = ws.Apply(sc.ID, sf.InsertField{Field: field})
	require.NoError(t, err)
	_, err = ws.Apply(sc.ID, sf.SetRule{Path: field.ID, Name: "required", Enabled: true})
	require.NoError(t, err)

	out, err := ws.ExportSchema(sc.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"displayName":"Email","dataType":"string","validationRules":{"required":true}}]`, string(out))
}

func TestExportAll(t *testing.T) {
	ws, err := workspace.New(workspace.WithClock(tickingClock()))
	require.NoError(t, err)

	a, err := ws.CreateSchema("a")
	require.NoError(t, err)
	_, err = ws.CreateSchema("b")
	require.NoError(t, err)
	field := ws.Engine().NewField("N", sf.TypeNumber)
	_, err = ws.Apply(a.ID, sf.InsertField{Field: field})
	require.NoError(t, err)

	out, err := ws.ExportAll()
	require.NoError(t, err)
	want := `[
		{"name":"a","schema":[{"displayName":"N","dataType":"number","validationRules":{}}]},
		{"name":"b","schema":[]}
	]`
	assert.JSONEq(t, want, string(out))
}

func TestGetSchema_IsolatedFromCallerEdits(t *testing.T) {
	ws, err := workspace.New()
	require.NoError(t, err)

	sc, err := ws.CreateSchema("s")
	require.NoError(t, err)
	field := ws.Engine().NewField("F", sf.TypeString)
	_, err = ws.Apply(sc.ID, sf.InsertField{Field: field})
	require.NoError(t, err)

	got, err := ws.GetSchema(sc.ID)
	require.NoError(t, err)
	got.Name = "scribbled"

	again, err := ws.GetSchema(sc.ID)
	require.NoError(t, err)
	assert.Equal(t, "s", again.Name)
}
