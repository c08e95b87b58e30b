package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/clientgen/schema"
)

func TestSchemaObjects(t *testing.T) {
	s := schema.New(nil)
	user := s.AddObject(&schema.Object{
		Name: "User",
		Fields: []*schema.ServerField{
			{Name: "id", Type: ast.NonNullNamedType("ID", nil)},
			{Name: "name", Type: ast.NamedType("String", nil)},
		},
	})
	query := s.AddObject(&schema.Object{Name: "Query"})

	t.Run("assigns ids in order", func(t *testing.T) {
		assert.Equal(t, schema.ObjectID(0), user.ID)
		assert.Equal(t, schema.ObjectID(1), query.ID)
		assert.Same(t, user, s.Object(user.ID))
	})

	t.Run("out of range id", func(t *testing.T) {
		assert.Nil(t, s.Object(-1))
		assert.Nil(t, s.Object(42))
	})

	t.Run("lookup by name", func(t *testing.T) {
		got, ok := s.ObjectByName("Query")
		require.True(t, ok)
		assert.Same(t, query, got)

		_, ok = s.ObjectByName("Missing")
		assert.False(t, ok)
	})

	t.Run("refetchable requires id: ID!", func(t *testing.T) {
		assert.True(t, user.Refetchable())
		assert.False(t, query.Refetchable())
	})
}

func TestAddClientField(t *testing.T) {
	s := schema.New(nil)
	user := s.AddObject(&schema.Object{
		Name:   "User",
		Fields: []*schema.ServerField{{Name: "name", Type: ast.NamedType("String", nil)}},
	})

	t.Run("attaches to parent", func(t *testing.T) {
		f := &schema.ClientField{Name: "displayName", Parent: user.ID}
		require.NoError(t, s.AddClientField(f))

		got, ok := user.ClientField("displayName")
		require.True(t, ok)
		assert.Same(t, f, got)
		assert.Len(t, s.ClientFields, 1)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		err := s.AddClientField(&schema.ClientField{Name: "displayName", Parent: user.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects shadowing a server field", func(t *testing.T) {
		err := s.AddClientField(&schema.ClientField{Name: "name", Parent: user.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shadows")
	})

	t.Run("refetch fields may not shadow either", func(t *testing.T) {
		err := s.AddClientField(&schema.ClientField{Name: "name", Parent: user.ID, Refetch: true})
		require.Error(t, err)
		assert.Len(t, user.ClientFields, 1)
	})

	t.Run("rejects unknown parent", func(t *testing.T) {
		err := s.AddClientField(&schema.ClientField{Name: "x", Parent: 9})
		require.Error(t, err)
	})
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    schema.Variant
		wantErr bool
	}{
		{"", schema.Eager, false},
		{"eager", schema.Eager, false},
		{"Component", schema.Component, false},
		{"widget", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schema.ParseVariant(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "component", schema.Component.String())
}

func TestSortRefetchPaths(t *testing.T) {
	in := []schema.RefetchPath{
		{Path: []string{"pet", "owner"}},
		{Path: nil},
		{Path: []string{"best_friend"}},
	}
	got := schema.SortRefetchPaths(in)

	require.Len(t, got, 3)
	assert.Equal(t, "", got[0].Key())
	assert.Equal(t, "best_friend", got[1].Key())
	assert.Equal(t, "pet.owner", got[2].Key())
	for i, p := range got {
		assert.Equal(t, i, p.Index)
	}
	// input untouched
	assert.Equal(t, "pet.owner", in[0].Key())
}

func TestSelectionResponseKey(t *testing.T) {
	assert.Equal(t, "name", (&schema.Selection{Name: "name"}).ResponseKey())
	assert.Equal(t, "n", (&schema.Selection{Name: "name", Alias: "n"}).ResponseKey())
	assert.Equal(t, "RefetchField", schema.SelectRefetch.String())
}
