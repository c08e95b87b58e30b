package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSet(t *testing.T) {
	avatar := ImportKey{ParentType: "User", FieldName: "avatar"}
	badge := ImportKey{ParentType: "Pet", FieldName: "badge"}

	t.Run("With does not modify the receiver", func(t *testing.T) {
		s := NewImportSet(avatar)
		s2 := s.With(badge)

		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 2, s2.Len())
		assert.False(t, s.Has(badge))
	})

	t.Run("merge is idempotent", func(t *testing.T) {
		s := Union(NewImportSet(avatar), NewImportSet(avatar), NewImportSet(avatar, badge))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		var s ImportSet
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Keys())
		assert.Equal(t, 1, s.With(avatar).Len())
	})

	t.Run("keys are ordered by type then field", func(t *testing.T) {
		s := NewImportSet(
			ImportKey{"User", "b"},
			ImportKey{"Pet", "z"},
			ImportKey{"User", "a"},
		)
		assert.Equal(t, []ImportKey{{"Pet", "z"}, {"User", "a"}, {"User", "b"}}, s.Keys())
	})
}

func TestReaderImportStatements(t *testing.T) {
	t.Run("one line per symbol", func(t *testing.T) {
		// Two sibling selections requiring the same nested field.
		s := Union(
			NewImportSet(ImportKey{"User", "avatar"}),
			NewImportSet(ImportKey{"User", "avatar"}),
			NewImportSet(ImportKey{"Pet", "badge"}),
		)
		got := ReaderImportStatements(s)

		assert.Equal(t,
			"import Pet__badge__resolver_reader from '../../Pet/badge/reader';\n"+
				"import User__avatar__resolver_reader from '../../User/avatar/reader';\n",
			got)
		assert.Equal(t, 1, strings.Count(got, "User__avatar__resolver_reader"))
	})

	t.Run("empty set renders nothing", func(t *testing.T) {
		assert.Empty(t, ReaderImportStatements(ImportSet{}))
	})
}

func TestParamTypeImportStatements(t *testing.T) {
	s := NewImportSet(ImportKey{"BlogItem", "BlogItemDisplay"}, ImportKey{"AdItem", "AdItemDisplayWrapper"})
	got := ParamTypeImportStatements(s)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "import { type AdItem__AdItemDisplayWrapper__output_type } from '../../AdItem/AdItemDisplayWrapper/output_type';", lines[0])
	assert.Equal(t, "import { type BlogItem__BlogItemDisplay__output_type } from '../../BlogItem/BlogItemDisplay/output_type';", lines[1])
}

func TestImportOrderIsDeterministic(t *testing.T) {
	keys := []ImportKey{{"C", "x"}, {"A", "y"}, {"B", "z"}, {"A", "a"}}
	want := ReaderImportStatements(NewImportSet(keys...))

	for i := 0; i < 20; i++ {
		// Insert in a rotated order each time.
		rotated := append(append([]ImportKey{}, keys[i%len(keys):]...), keys[:i%len(keys)]...)
		s := ImportSet{}
		for _, k := range rotated {
			s = s.With(k)
		}
		assert.Equal(t, want, ReaderImportStatements(s))
	}
}
