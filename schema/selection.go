package schema

import (
	"sort"
	"strings"
)

// RefetchFieldName is the reserved selection marking a refetch location.
const RefetchFieldName = "__refetch"

// SelectionKind classifies a Selection.
type SelectionKind int

const (
	SelectScalar SelectionKind = iota
	SelectLinked
	SelectResolver
	SelectRefetch
)

// String implements fmt.Stringer.
func (k SelectionKind) String() string {
	switch k {
	case SelectScalar:
		return "Scalar"
	case SelectLinked:
		return "Linked"
	case SelectResolver:
		return "Resolver"
	case SelectRefetch:
		return "RefetchField"
	default:
		return "Unknown"
	}
}

// Argument is a field argument with its value rendered as GraphQL text.
type Argument struct {
	Name  string
	Value string
	// Variable is set when Value names a variable (without the leading $).
	Variable bool
}

// Selection is one entry of a selection set.
type Selection struct {
	Kind      SelectionKind
	Name      string
	Alias     string
	Arguments []Argument
	// Selections is set for SelectLinked.
	Selections SelectionSet
	// Field is set for SelectScalar and SelectLinked.
	Field *ServerField
	// ClientField is set for SelectResolver.
	ClientField *ClientField
}

// ResponseKey returns the alias if present, else the field name.
func (s *Selection) ResponseKey() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// SelectionSet is an ordered list of selections.
type SelectionSet []*Selection

// RefetchPath locates a __refetch selection relative to the root of a
// selection set. Path holds the response keys of the linked fields traversed.
type RefetchPath struct {
	Path  []string
	Index int
}

// Key returns the dotted form of the path.
func (p RefetchPath) Key() string {
	return strings.Join(p.Path, ".")
}

// SortRefetchPaths orders paths by key and renumbers them.
func SortRefetchPaths(paths []RefetchPath) []RefetchPath {
	out := make([]RefetchPath, len(paths))
	copy(out, paths)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	for i := range out {
		out[i].Index = i
	}
	return out
}

// MergedSelection is a server-only selection produced by merging: client
// field selections have been inlined and duplicates removed.
type MergedSelection struct {
	Name       string
	Alias      string
	Arguments  []Argument
	Selections MergedSelectionSet
}

// ResponseKey returns the alias if present, else the field name.
func (s *MergedSelection) ResponseKey() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// Linked reports whether the selection has a nested selection set.
func (s *MergedSelection) Linked() bool {
	return s.Selections != nil
}

// MergedSelectionSet is ordered by response key.
type MergedSelectionSet []*MergedSelection
