package gen

import (
	"github.com/syssam/clientgen/schema"
)

// RefetchReader generates the artifacts of a client field backing a
// refetchable query. The caller builds functionImport (see FunctionImport)
// because it shares it with the refetch query generated alongside.
//
// Unlike EagerReader, the imports required by the reader AST and by the
// parameter type are collected into a single set and both import blocks are
// rendered from it.
func (g *Generator) RefetchReader(s *schema.Schema, field *schema.ClientField, functionImport string) (Artifacts, error) {
	parent, err := checkField(s, field)
	if err != nil {
		return Artifacts{}, err
	}

	// Only the refetch paths are needed; the merged selection set is used
	// by the query text generator.
	_, refetchPaths := g.collab.Merger.MergeSelectionSet(s, parent, field.Selections)

	readerAST, readerImports := g.collab.AST.BuildReaderAST(s, field.Selections, 0, refetchPaths)
	paramType, paramImports := g.collab.ParamTypes.RenderParamType(s, field.Selections, parent, 0)
	nested := Union(readerImports, paramImports)

	plan := newPlan(refetchKind{}, g.cfg.Runtime(), g.cfg.Header, parent.Name, field.Name)
	plan.FunctionImport = functionImport
	plan.ReaderAST = readerAST
	plan.ReaderImports = ReaderImportStatements(nested)
	plan.ParamTypeExpr = paramType
	plan.ParamTypeImports = ParamTypeImportStatements(nested)
	plan.OutputTypeExpr = outputTypeExpr(field)
	return plan.artifacts()
}
