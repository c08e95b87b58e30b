package gen

import (
	"errors"
	"fmt"

	"github.com/syssam/clientgen/schema"
)

// ReaderASTBuilder walks a selection set and renders the reader AST literal
// the runtime uses to read the selected data. It returns the reader modules
// of nested client fields the AST references.
type ReaderASTBuilder interface {
	BuildReaderAST(s *schema.Schema, sel schema.SelectionSet, depth int, refetchPaths []schema.RefetchPath) (string, ImportSet)
}

// ParamTypeRenderer renders the TypeScript type of the data a client field's
// function receives. It returns the output types of nested client fields the
// expression references.
type ParamTypeRenderer interface {
	RenderParamType(s *schema.Schema, sel schema.SelectionSet, parent *schema.Object, depth int) (string, ImportSet)
}

// SelectionMerger flattens a selection set into the server fields it
// fetches, reporting where refetch queries are reachable.
type SelectionMerger interface {
	MergeSelectionSet(s *schema.Schema, parent *schema.Object, sel schema.SelectionSet) (schema.MergedSelectionSet, []schema.RefetchPath)
}

// Collaborators are the stages the generators delegate to.
type Collaborators struct {
	AST        ReaderASTBuilder
	ParamTypes ParamTypeRenderer
	Merger     SelectionMerger
}

// TraversalState is what the traversal of an entrypoint learned about a
// client field before its artifacts are generated.
type TraversalState struct {
	RefetchPaths []schema.RefetchPath
}

// Generator generates the artifacts of client fields. It holds no mutable
// state and may be shared by concurrent callers.
type Generator struct {
	cfg    *Config
	collab Collaborators
}

// NewGenerator returns a Generator. Every collaborator is required.
func NewGenerator(cfg *Config, c Collaborators) (*Generator, error) {
	switch {
	case cfg == nil:
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	case c.AST == nil:
		return nil, NewConfigError("Collaborators.AST", nil, "reader AST builder cannot be nil")
	case c.ParamTypes == nil:
		return nil, NewConfigError("Collaborators.ParamTypes", nil, "parameter type renderer cannot be nil")
	case c.Merger == nil:
		return nil, NewConfigError("Collaborators.Merger", nil, "selection merger cannot be nil")
	}
	return &Generator{cfg: cfg, collab: c}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() *Config {
	return g.cfg
}

// FunctionImport builds the function import statement of field.
func (g *Generator) FunctionImport(s *schema.Schema, field *schema.ClientField) (string, error) {
	stmt, err := g.cfg.FunctionImport(field.Info)
	if err != nil {
		var pe *PreconditionError
		if errors.As(err, &pe) {
			pe.Type, pe.Field = parentName(s, field), field.Name
		}
		return "", err
	}
	return stmt, nil
}

// checkField verifies the preconditions shared by both generators and
// returns the parent object.
func checkField(s *schema.Schema, field *schema.ClientField) (*schema.Object, error) {
	if !field.HasSelectionSet() {
		return nil, NewPreconditionError(parentName(s, field), field.Name, "", ErrMissingSelectionSet)
	}
	parent := s.Object(field.Parent)
	if parent == nil {
		return nil, NewPreconditionError("", field.Name, "", fmt.Errorf("unknown parent object %d", field.Parent))
	}
	return parent, nil
}

func parentName(s *schema.Schema, field *schema.ClientField) string {
	if o := s.Object(field.Parent); o != nil {
		return o.Name
	}
	return ""
}

func outputTypeExpr(field *schema.ClientField) string {
	if field.OutputType == "" {
		return schema.DefaultOutputType
	}
	return field.OutputType
}
