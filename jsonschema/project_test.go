package jsonschema_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sf "github.com/schemaforge/schemaforge"
	"github.com/schemaforge/schemaforge/jsonschema"
)

func TestFromFields_StringRules(t *testing.T) {
	e := sf.NewEngine(nil)
	password := e.NewField("password", sf.TypeString)
	forest := e.Apply(nil, sf.InsertField{Field: password})
	forest = e.Apply(forest, sf.SetRule{Path: password.ID, Name: "required", Enabled: true})
	forest = e.Apply(forest, sf.SetRule{Path: password.ID, Name: "min_length", Enabled: true, Value: 8})
	forest = e.Apply(forest, sf.SetRule{Path: password.ID, Name: "has_numbers", Enabled: true})
	forest = e.Apply(forest, sf.SetRule{Path: password.ID, Name: "has_uppercase", Enabled: true})

	s := jsonschema.FromFields(forest)

	require.Contains(t, s.Properties, "password")
	assert.Equal(t, []string{"password"}, s.Required)
	p := s.Properties["password"]
	require.NotNil(t, p.MinLength)
	assert.Equal(t, 8, *p.MinLength)
	require.Len(t, p.AllOf, 2)
	assert.Equal(t, "[0-9]", p.AllOf[0].Pattern)
	assert.Equal(t, "[A-Z]", p.AllOf[1].Pattern)
}

func TestFromFields_NumberAndBoolean(t *testing.T) {
	e := sf.NewEngine(nil)
	age := e.NewField("age", sf.TypeNumber)
	tos := e.NewField("acceptedTerms", sf.TypeBoolean)
	forest := e.Apply(nil, sf.InsertField{Field: age})
	forest = e.Apply(forest, sf.InsertField{Field: tos})
	forest = e.Apply(forest, sf.SetRule{Path: age.ID, Name: "integer_only", Enabled: true})
	forest = e.Apply(forest, sf.SetRule{Path: age.ID, Name: "min", Enabled: true, Value: 13})
	forest = e.Apply(forest, sf.SetRule{Path: tos.ID, Name: "must_be_true", Enabled: true})

	s := jsonschema.FromFields(forest)

	a := s.Properties["age"]
	assert.Equal(t, "integer", a.Type)
	require.NotNil(t, a.Minimum)
	assert.Equal(t, 13.0, *a.Minimum)

	b := s.Properties["acceptedTerms"]
	assert.Equal(t, "boolean", b.Type)
	assert.Equal(t, true, b.Const)
}

func TestFromFields_ArrayWithItemSchema(t *testing.T) {
	e := sf.NewEngine(nil)
	tags := e.NewField("tags", sf.TypeArray)
	item := e.NewField("", sf.TypeObject)
	label := e.NewField("label", sf.TypeString)
	forest := e.Apply(nil, sf.InsertField{Field: tags})
	forest = e.Apply(forest, sf.InsertField{ParentPath: tags.ID, Field: item})
	forest = e.Apply(forest, sf.InsertField{ParentPath: sf.JoinPath(tags.ID, sf.ItemSchemaSegment), Field: label})
	forest = e.Apply(forest, sf.SetRule{Path: tags.ID, Name: "unique_items", Enabled: true})
	forest = e.Apply(forest, sf.SetRule{Path: tags.ID, Name: "max_items", Enabled: true, Value: 10})
	forest = e.Apply(forest, sf.SetRule{
		Path: sf.JoinPath(tags.ID, sf.ItemSchemaSegment, label.ID), Name: "required", Enabled: true,
	})

	s := jsonschema.FromFields(forest)

	a := s.Properties["tags"]
	assert.True(t, a.UniqueItems)
	require.NotNil(t, a.MaxItems)
	assert.Equal(t, 10, *a.MaxItems)
	require.NotNil(t, a.Items)
	assert.Equal(t, "object", a.Items.Type)
	assert.Equal(t, []string{"label"}, a.Items.Required)
}

func TestFromFields_EmptyForest(t *testing.T) {
	s := jsonschema.FromFields(nil)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object"}`, string(raw))
}

func TestFromFields_DisabledRulesIgnored(t *testing.T) {
	e := sf.NewEngine(nil)
	name := e.NewField("name", sf.TypeString)
	forest := e.Apply(nil, sf.InsertField{Field: name})
	forest = e.Apply(forest, sf.SetRule{Path: name.ID, Name: "min_length", Enabled: true, Value: 3})
	forest = e.Apply(forest, sf.SetRule{Path: name.ID, Name: "min_length", Enabled: false})

	s := jsonschema.FromFields(forest)
	assert.Nil(t, s.Properties["name"].MinLength)
	assert.Empty(t, s.Required)
}
