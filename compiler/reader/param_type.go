package reader

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/schema"
)

// refetchType is the type of a __refetch selection as seen by the client
// field's function.
const refetchType = "(() => void)"

// scalarTypes maps GraphQL scalars to TypeScript. Unknown scalars are
// strings.
var scalarTypes = map[string]string{
	"ID":      "string",
	"String":  "string",
	"Int":     "number",
	"Float":   "number",
	"Boolean": "boolean",
}

// ParamTypes renders parameter types.
type ParamTypes struct{}

// RenderParamType renders the object type of the data sel reads from
// parent. Each response key appears once, in selection order.
func (ParamTypes) RenderParamType(s *schema.Schema, sel schema.SelectionSet, parent *schema.Object, depth int) (string, gen.ImportSet) {
	r := &paramRenderer{schema: s}
	r.object(sel, depth)
	return r.b.String(), r.imports
}

type paramRenderer struct {
	schema  *schema.Schema
	imports gen.ImportSet
	b       strings.Builder
}

func (r *paramRenderer) object(sel schema.SelectionSet, depth int) {
	seen := make(map[string]struct{}, len(sel))
	r.b.WriteString("{\n")
	for _, s := range sel {
		key := s.ResponseKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		r.b.WriteString(indent(depth+1) + key + ": ")
		r.field(s, depth+1)
		r.b.WriteString(",\n")
	}
	r.b.WriteString(indent(depth) + "}")
}

func (r *paramRenderer) field(s *schema.Selection, depth int) {
	switch s.Kind {
	case schema.SelectResolver:
		key := importKey(r.schema, s.ClientField)
		r.imports = r.imports.With(key)
		r.b.WriteString(key.OutputTypeName())
	case schema.SelectRefetch:
		r.b.WriteString(refetchType)
	default:
		r.typ(s.Field.Type, s, depth)
	}
}

// typ renders a GraphQL type reference, wrapping lists and nullable types.
func (r *paramRenderer) typ(t *ast.Type, s *schema.Selection, depth int) {
	if !t.NonNull {
		r.b.WriteString("(")
	}
	if t.Elem != nil {
		r.b.WriteString("ReadonlyArray<")
		r.typ(t.Elem, s, depth)
		r.b.WriteString(">")
	} else if s.Kind == schema.SelectLinked {
		r.object(s.Selections, depth)
	} else {
		r.b.WriteString(scalarType(t.NamedType))
	}
	if !t.NonNull {
		r.b.WriteString(" | null)")
	}
}

func scalarType(name string) string {
	if ts, ok := scalarTypes[name]; ok {
		return ts
	}
	return "string"
}
