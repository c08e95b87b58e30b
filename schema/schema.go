package schema

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// ObjectID indexes an Object within its Schema.
type ObjectID int

// Schema is a validated schema: server types plus the client fields attached
// to them.
type Schema struct {
	Objects      []*Object
	ClientFields []*ClientField

	// Source is the parsed SDL the objects were built from.
	Source *ast.Schema

	byName map[string]ObjectID
}

// New returns an empty Schema backed by src.
func New(src *ast.Schema) *Schema {
	return &Schema{Source: src, byName: make(map[string]ObjectID)}
}

// AddObject appends an object, assigning its ID.
func (s *Schema) AddObject(o *Object) *Object {
	o.ID = ObjectID(len(s.Objects))
	s.Objects = append(s.Objects, o)
	if s.byName == nil {
		s.byName = make(map[string]ObjectID)
	}
	s.byName[o.Name] = o.ID
	return o
}

// AddClientField attaches f to its parent object.
func (s *Schema) AddClientField(f *ClientField) error {
	parent := s.Object(f.Parent)
	if parent == nil {
		return fmt.Errorf("unknown parent object %d for client field %q", f.Parent, f.Name)
	}
	if _, ok := parent.Field(f.Name); ok {
		return fmt.Errorf("client field %s.%s shadows a server field", parent.Name, f.Name)
	}
	if _, ok := parent.ClientField(f.Name); ok {
		return fmt.Errorf("duplicate client field %s.%s", parent.Name, f.Name)
	}
	parent.ClientFields = append(parent.ClientFields, f)
	s.ClientFields = append(s.ClientFields, f)
	return nil
}

// Object returns the object with the given id, or nil.
func (s *Schema) Object(id ObjectID) *Object {
	if id < 0 || int(id) >= len(s.Objects) {
		return nil
	}
	return s.Objects[id]
}

// ObjectByName returns the object with the given type name.
func (s *Schema) ObjectByName(name string) (*Object, bool) {
	id, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.Objects[id], true
}

// Object is a GraphQL object or interface type.
type Object struct {
	ID          ObjectID
	Name        string
	Description string
	// Abstract is set for interface types.
	Abstract     bool
	Fields       []*ServerField
	ClientFields []*ClientField
}

// Field returns the server field with the given name.
func (o *Object) Field(name string) (*ServerField, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// ClientField returns the client field with the given name.
func (o *Object) ClientField(name string) (*ClientField, bool) {
	for _, f := range o.ClientFields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Refetchable reports whether the object can be refetched by id,
// i.e. it declares an `id: ID!` field.
func (o *Object) Refetchable() bool {
	f, ok := o.Field("id")
	return ok && f.Type != nil && f.Type.NonNull && f.Type.Elem == nil && f.Type.NamedType == "ID"
}

// ServerField is a field declared in the SDL.
type ServerField struct {
	Name      string
	Type      *ast.Type
	Arguments ast.ArgumentDefinitionList
	// Linked is set when the field's named type is an object or interface;
	// Target then identifies it.
	Linked bool
	Target ObjectID
}

// TypeName returns the innermost named type of the field.
func (f *ServerField) TypeName() string {
	return f.Type.Name()
}

// Variant distinguishes how a user-written client field is consumed.
type Variant int

const (
	// Eager client fields are plain value resolvers read in place.
	Eager Variant = iota
	// Component client fields render UI.
	Component
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Eager:
		return "eager"
	case Component:
		return "component"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses a variant name. The empty string means Eager.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "", "eager":
		return Eager, nil
	case "component":
		return Component, nil
	default:
		return 0, fmt.Errorf("unknown client field variant %q; use eager or component", s)
	}
}

// UserWrittenInfo is the authoring metadata of a client field.
type UserWrittenInfo struct {
	// FilePath is the source file, relative to the project root.
	FilePath string
	// ExportName is the exported function implementing the field.
	ExportName string
	Variant    Variant
}

// DefaultOutputType is the output expression used when none is declared.
const DefaultOutputType = "ReturnType<typeof resolver>"

// ClientField is a named unit of client logic attached to a parent object.
type ClientField struct {
	Name   string
	Parent ObjectID
	// Selections is nil when the field declares no selection set.
	Selections SelectionSet
	// OutputType is the TypeScript expression for the function's result.
	OutputType  string
	Info        UserWrittenInfo
	Description string
	// Refetch marks fields backing a refetchable query.
	Refetch bool
}

// HasSelectionSet reports whether a selection set was declared.
func (f *ClientField) HasSelectionSet() bool {
	return f.Selections != nil
}
