package load

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/schema"
)

const sdl = `
type Query { me: User }
type User {
  id: ID!
  firstName: String
  bestFriend: User
  tags(first: Int): [String!]!
}
type Pet { name: String! }
`

func parse(t *testing.T) *ast.Schema {
	t.Helper()
	src, err := ParseSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	require.NoError(t, err)
	return src
}

func manifest(specs ...FieldSpec) *Manifest {
	return &Manifest{ClientFields: specs}
}

func TestParseSchema(t *testing.T) {
	t.Run("objects in name order", func(t *testing.T) {
		s := objects(parse(t))

		names := make([]string, len(s.Objects))
		for i, o := range s.Objects {
			names[i] = o.Name
		}
		assert.Equal(t, []string{"Pet", "Query", "User"}, names)
	})

	t.Run("linked fields resolve their target", func(t *testing.T) {
		s := objects(parse(t))
		user, ok := s.ObjectByName("User")
		require.True(t, ok)

		bf, ok := user.Field("bestFriend")
		require.True(t, ok)
		assert.True(t, bf.Linked)
		assert.Equal(t, user.ID, bf.Target)

		tags, ok := user.Field("tags")
		require.True(t, ok)
		assert.False(t, tags.Linked)
		assert.True(t, user.Refetchable())
	})

	t.Run("introspection fields are skipped", func(t *testing.T) {
		s := objects(parse(t))
		query, _ := s.ObjectByName("Query")
		_, ok := query.Field("__schema")
		assert.False(t, ok)
	})

	t.Run("invalid SDL", func(t *testing.T) {
		_, err := ParseSchema(&ast.Source{Name: "bad.graphql", Input: "type {"})
		require.Error(t, err)
		assert.True(t, gen.IsSchemaError(err))
	})

	t.Run("no files", func(t *testing.T) {
		_, err := LoadSchema()
		assert.True(t, errors.Is(err, gen.ErrMissingConfig))
	})
}

func TestParseManifest(t *testing.T) {
	t.Run("decodes fields", func(t *testing.T) {
		m, err := ParseManifest([]byte(`
clientFields:
  - parent: User
    name: displayName
    file: src/displayName.ts
    select: "{ firstName }"
  - parent: User
    name: Card
    file: src/Card.tsx
    export: UserCard
    variant: component
`))
		require.NoError(t, err)
		require.Len(t, m.ClientFields, 2)
		assert.Equal(t, "displayName", m.ClientFields[0].ExportName())
		assert.Equal(t, "UserCard", m.ClientFields[1].ExportName())
		assert.Equal(t, "component", m.ClientFields[1].Variant)
	})

	t.Run("empty document", func(t *testing.T) {
		m, err := ParseManifest(nil)
		require.NoError(t, err)
		assert.Empty(t, m.ClientFields)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := ParseManifest([]byte("clientFields:\n  - parent: User\n    nmae: x\n"))
		require.Error(t, err)
		assert.True(t, gen.IsSchemaError(err))
	})
}

func TestBuild(t *testing.T) {
	t.Run("selections resolve in any declaration order", func(t *testing.T) {
		s, err := Build(parse(t), manifest(
			FieldSpec{Parent: "User", Name: "card", File: "src/card.ts", Select: "{ displayName bestFriend { displayName __refetch } }"},
			FieldSpec{Parent: "User", Name: "displayName", File: "src/displayName.ts", Select: "{ name: firstName tags(first: 3) }"},
		))
		require.NoError(t, err)

		user, _ := s.ObjectByName("User")
		card, ok := user.ClientField("card")
		require.True(t, ok)
		require.Len(t, card.Selections, 2)
		assert.Equal(t, schema.SelectResolver, card.Selections[0].Kind)
		assert.Equal(t, "displayName", card.Selections[0].ClientField.Name)

		bf := card.Selections[1]
		assert.Equal(t, schema.SelectLinked, bf.Kind)
		require.Len(t, bf.Selections, 2)
		assert.Equal(t, schema.SelectRefetch, bf.Selections[1].Kind)

		dn, _ := user.ClientField("displayName")
		assert.Equal(t, "name", dn.Selections[0].Alias)
		assert.Equal(t, "", dn.Selections[1].Alias)
		assert.Equal(t, []schema.Argument{{Name: "first", Value: "3"}}, dn.Selections[1].Arguments)
		assert.Equal(t, "displayName", dn.Info.ExportName)
		assert.Equal(t, schema.Eager, dn.Info.Variant)
	})

	t.Run("field without select has no selection set", func(t *testing.T) {
		s, err := Build(parse(t), manifest(FieldSpec{Parent: "User", Name: "x", File: "src/x.ts"}))
		require.NoError(t, err)
		assert.False(t, s.ClientFields[0].HasSelectionSet())
	})

	t.Run("variable arguments", func(t *testing.T) {
		s, err := Build(parse(t), manifest(FieldSpec{Parent: "User", Name: "x", File: "src/x.ts", Select: "{ tags(first: $n) }"}))
		require.NoError(t, err)
		assert.Equal(t, []schema.Argument{{Name: "first", Value: "n", Variable: true}}, s.ClientFields[0].Selections[0].Arguments)
	})

	schemaErrors := map[string]FieldSpec{
		"unknown parent":               {Parent: "Nope", Name: "x", File: "a.ts"},
		"missing name":                 {Parent: "User", File: "a.ts"},
		"missing file":                 {Parent: "User", Name: "x"},
		"bad variant":                  {Parent: "User", Name: "x", File: "a.ts", Variant: "lazy"},
		"shadows a field":              {Parent: "User", Name: "firstName", File: "a.ts"},
		"refetch shadows a root field": {Parent: "Query", Name: "me", File: "a.ts", Refetch: true, Select: "{ me { id } }"},
		"component output":             {Parent: "User", Name: "Card", File: "a.tsx", Variant: "component", Output: "string"},
	}
	for name, spec := range schemaErrors {
		t.Run(name, func(t *testing.T) {
			_, err := Build(parse(t), manifest(spec))
			require.Error(t, err)
			assert.True(t, gen.IsSchemaError(err))
		})
	}

	t.Run("duplicate client field", func(t *testing.T) {
		spec := FieldSpec{Parent: "User", Name: "x", File: "a.ts"}
		_, err := Build(parse(t), manifest(spec, spec))
		assert.True(t, gen.IsSchemaError(err))
	})

	selectionErrors := map[string]string{
		"unknown field":            "{ nope }",
		"scalar with selections":   "{ firstName { x } }",
		"linked without selection": "{ bestFriend }",
		"fragment spread":          "{ ...F }",
		"refetch with selections":  "{ __refetch { id } }",
		"syntax":                   "{ firstName",
		"nested unknown field":     "{ bestFriend { nope } }",
	}
	for name, sel := range selectionErrors {
		t.Run(name, func(t *testing.T) {
			_, err := Build(parse(t), manifest(FieldSpec{Parent: "User", Name: "x", File: "a.ts", Select: sel}))
			require.Error(t, err)
			assert.True(t, gen.IsSelectionError(err))
			assert.ErrorIs(t, err, gen.ErrInvalidSelection)
		})
	}

	t.Run("refetch requires an id", func(t *testing.T) {
		_, err := Build(parse(t), manifest(FieldSpec{Parent: "Pet", Name: "x", File: "a.ts", Select: "{ __refetch }"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be refetched")
	})

	t.Run("every selection error is reported", func(t *testing.T) {
		_, err := Build(parse(t), manifest(
			FieldSpec{Parent: "User", Name: "a", File: "a.ts", Select: "{ nope }"},
			FieldSpec{Parent: "User", Name: "b", File: "b.ts", Select: "{ alsoNope }"},
		))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
		assert.Contains(t, err.Error(), "alsoNope")
	})
}

func TestLoad(t *testing.T) {
	s, err := Load([]string{filepath.Join("testdata", "schema.graphql")}, filepath.Join("testdata", "clientfields.yaml"))
	require.NoError(t, err)
	require.Len(t, s.ClientFields, 4)

	pet, ok := s.ObjectByName("Pet")
	require.True(t, ok)
	badge, ok := pet.ClientField("badge")
	require.True(t, ok)
	assert.Equal(t, "petBadge", badge.Info.ExportName)
	assert.Equal(t, "string", badge.OutputType)

	query, _ := s.ObjectByName("Query")
	node, ok := query.ClientField("node")
	require.True(t, ok)
	assert.True(t, node.Refetch)
	require.Len(t, node.Selections, 1)
	assert.Equal(t, "entity", node.Selections[0].Name)
	assert.Equal(t, []schema.Argument{{Name: "id", Value: "id", Variable: true}}, node.Selections[0].Arguments)

	_, err = Load([]string{filepath.Join("testdata", "schema.graphql")}, filepath.Join("testdata", "missing.yaml"))
	assert.True(t, gen.IsSchemaError(err))
}
