package gen

import (
	"sort"
	"strings"
)

// ImportKey identifies the generated modules of another client field.
type ImportKey struct {
	ParentType string
	FieldName  string
}

// ReaderName is the identifier a reader module is imported under.
func (k ImportKey) ReaderName() string {
	return k.ParentType + "__" + k.FieldName + "__resolver_reader"
}

// OutputTypeName is the output type alias declared by the field.
func (k ImportKey) OutputTypeName() string {
	return OutputTypeName(k.ParentType, k.FieldName)
}

func (k ImportKey) less(o ImportKey) bool {
	if k.ParentType != o.ParentType {
		return k.ParentType < o.ParentType
	}
	return k.FieldName < o.FieldName
}

// ImportSet is a set of import requirements. It is a value: With and Union
// return new sets and never modify their operands, so sets produced by
// independent walks can be merged in any order with the same result.
type ImportSet struct {
	keys map[ImportKey]struct{}
}

// NewImportSet returns a set holding keys.
func NewImportSet(keys ...ImportKey) ImportSet {
	s := ImportSet{keys: make(map[ImportKey]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// With returns a copy of s that also holds k.
func (s ImportSet) With(k ImportKey) ImportSet {
	return Union(s, NewImportSet(k))
}

// Union returns the set holding every key of sets.
func Union(sets ...ImportSet) ImportSet {
	n := 0
	for _, s := range sets {
		n += len(s.keys)
	}
	out := ImportSet{keys: make(map[ImportKey]struct{}, n)}
	for _, s := range sets {
		for k := range s.keys {
			out.keys[k] = struct{}{}
		}
	}
	return out
}

// Len returns the number of keys.
func (s ImportSet) Len() int {
	return len(s.keys)
}

// Has reports whether k is in the set.
func (s ImportSet) Has(k ImportKey) bool {
	_, ok := s.keys[k]
	return ok
}

// Keys returns the keys in (ParentType, FieldName) order.
func (s ImportSet) Keys() []ImportKey {
	keys := make([]ImportKey, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}

// ReaderImportStatements renders the imports a reader module needs for the
// reader artifacts of nested client fields, one line per key.
func ReaderImportStatements(s ImportSet) string {
	var b strings.Builder
	for _, k := range s.Keys() {
		b.WriteString("import ")
		b.WriteString(k.ReaderName())
		b.WriteString(" from '")
		b.WriteString(siblingModule(k, ReaderFile))
		b.WriteString("';\n")
	}
	return b.String()
}

// ParamTypeImportStatements renders the imports a parameter type module
// needs for the output types of nested client fields, one line per key.
func ParamTypeImportStatements(s ImportSet) string {
	var b strings.Builder
	for _, k := range s.Keys() {
		b.WriteString("import { type ")
		b.WriteString(k.OutputTypeName())
		b.WriteString(" } from '")
		b.WriteString(siblingModule(k, OutputTypeFile))
		b.WriteString("';\n")
	}
	return b.String()
}

// siblingModule is the path from one artifact directory to a file of
// another field's artifact directory.
func siblingModule(k ImportKey, file FileName) string {
	return "../../" + ArtifactDirectory(k.ParentType, k.FieldName) + "/" + string(file)
}
