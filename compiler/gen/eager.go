package gen

import (
	"fmt"

	"github.com/syssam/clientgen/schema"
)

// EagerReader generates the artifacts of a client field read synchronously
// in place, either as a plain resolver or as a component.
//
// It fails with a PreconditionError when the field has no selection set or
// its function cannot be imported from the artifact directory.
func (g *Generator) EagerReader(s *schema.Schema, field *schema.ClientField, state TraversalState) (Artifacts, error) {
	parent, err := checkField(s, field)
	if err != nil {
		return Artifacts{}, err
	}

	readerAST, readerImports := g.collab.AST.BuildReaderAST(s, field.Selections, 0, state.RefetchPaths)
	paramType, paramImports := g.collab.ParamTypes.RenderParamType(s, field.Selections, parent, 0)

	functionImport, err := g.FunctionImport(s, field)
	if err != nil {
		return Artifacts{}, err
	}

	var kind readerKind
	switch field.Info.Variant {
	case schema.Eager:
		kind = eagerKind{}
	case schema.Component:
		kind = componentKind{}
	default:
		return Artifacts{}, NewPreconditionError(parent.Name, field.Name, "", fmt.Errorf("unsupported variant %s", field.Info.Variant))
	}

	plan := newPlan(kind, g.cfg.Runtime(), g.cfg.Header, parent.Name, field.Name)
	plan.FunctionImport = functionImport
	plan.ReaderAST = readerAST
	plan.ReaderImports = ReaderImportStatements(readerImports)
	plan.ParamTypeExpr = paramType
	plan.ParamTypeImports = ParamTypeImportStatements(paramImports)
	plan.OutputTypeExpr = outputTypeExpr(field)
	return plan.artifacts()
}
