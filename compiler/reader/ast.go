package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/schema"
)

// Walker renders reader ASTs.
type Walker struct{}

// BuildReaderAST renders sel as a TypeScript array literal with one node per
// selection. depth is the nesting level of the literal in the generated
// module and controls indentation. A __refetch selection is rendered with
// the index of its entry in refetchPaths.
func (Walker) BuildReaderAST(s *schema.Schema, sel schema.SelectionSet, depth int, refetchPaths []schema.RefetchPath) (string, gen.ImportSet) {
	w := &astWriter{
		schema:  s,
		indices: make(map[string]int, len(refetchPaths)),
	}
	for _, p := range refetchPaths {
		w.indices[p.Key()] = p.Index
	}
	w.selections(sel, depth, nil)
	return w.b.String(), w.imports
}

type astWriter struct {
	schema  *schema.Schema
	indices map[string]int
	imports gen.ImportSet
	b       strings.Builder
}

func (w *astWriter) selections(sel schema.SelectionSet, depth int, path []string) {
	w.b.WriteString("[\n")
	for _, s := range sel {
		w.node(s, depth+1, path)
	}
	w.b.WriteString(indent(depth) + "]")
}

func (w *astWriter) node(s *schema.Selection, depth int, path []string) {
	pad := indent(depth + 1)
	w.b.WriteString(indent(depth) + "{\n")
	fmt.Fprintf(&w.b, "%skind: %q,\n", pad, s.Kind.String())

	switch s.Kind {
	case schema.SelectScalar:
		fmt.Fprintf(&w.b, "%sfieldName: %q,\n", pad, s.Name)
		fmt.Fprintf(&w.b, "%salias: %s,\n", pad, alias(s))
		fmt.Fprintf(&w.b, "%sarguments: %s,\n", pad, arguments(s.Arguments))
	case schema.SelectLinked:
		fmt.Fprintf(&w.b, "%sfieldName: %q,\n", pad, s.Name)
		fmt.Fprintf(&w.b, "%salias: %s,\n", pad, alias(s))
		fmt.Fprintf(&w.b, "%sarguments: %s,\n", pad, arguments(s.Arguments))
		w.b.WriteString(pad + "selections: ")
		w.selections(s.Selections, depth+1, append(path[:len(path):len(path)], s.ResponseKey()))
		w.b.WriteString(",\n")
	case schema.SelectResolver:
		key := importKey(w.schema, s.ClientField)
		w.imports = w.imports.With(key)
		fmt.Fprintf(&w.b, "%salias: %q,\n", pad, s.ResponseKey())
		fmt.Fprintf(&w.b, "%sarguments: %s,\n", pad, arguments(s.Arguments))
		fmt.Fprintf(&w.b, "%sreaderArtifact: %s,\n", pad, key.ReaderName())
	case schema.SelectRefetch:
		fmt.Fprintf(&w.b, "%salias: %q,\n", pad, s.ResponseKey())
		fmt.Fprintf(&w.b, "%sreaderArtifact: null,\n", pad)
		fmt.Fprintf(&w.b, "%srefetchQuery: %s,\n", pad, w.refetchIndex(path))
	}
	w.b.WriteString(indent(depth) + "},\n")
}

// refetchIndex returns the index recorded for path, or null when the
// traversal recorded none.
func (w *astWriter) refetchIndex(path []string) string {
	if i, ok := w.indices[strings.Join(path, ".")]; ok {
		return strconv.Itoa(i)
	}
	return "null"
}

func importKey(s *schema.Schema, cf *schema.ClientField) gen.ImportKey {
	key := gen.ImportKey{FieldName: cf.Name}
	if o := s.Object(cf.Parent); o != nil {
		key.ParentType = o.Name
	}
	return key
}

func alias(s *schema.Selection) string {
	if s.Alias == "" {
		return "null"
	}
	return strconv.Quote(s.Alias)
}

// arguments renders field arguments as a list of [name, value] pairs.
func arguments(args []schema.Argument) string {
	if len(args) == 0 {
		return "null"
	}
	parts := make([]string, len(args))
	for i, a := range args {
		if a.Variable {
			parts[i] = fmt.Sprintf("[%q, { kind: \"Variable\", name: %q }]", a.Name, a.Value)
		} else {
			parts[i] = fmt.Sprintf("[%q, { kind: \"Literal\", value: %s }]", a.Name, strconv.Quote(a.Value))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
