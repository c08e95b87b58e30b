// Package reader implements the selection-set stages the artifact
// generators delegate to:
//
//   - Walker renders the reader AST literal of a selection set
//   - ParamTypes renders the TypeScript type of the data a field reads
//   - Merger flattens a selection set into the server fields it fetches
//
// Each type satisfies the matching interface of package gen and may be used
// through gen.Collaborators:
//
//	g, err := gen.NewGenerator(cfg, reader.Collaborators())
package reader

import "github.com/syssam/clientgen/compiler/gen"

// Collaborators returns the default collaborators.
func Collaborators() gen.Collaborators {
	return gen.Collaborators{
		AST:        Walker{},
		ParamTypes: ParamTypes{},
		Merger:     Merger{},
	}
}

// compile-time checks
var (
	_ gen.ReaderASTBuilder  = Walker{}
	_ gen.ParamTypeRenderer = ParamTypes{}
	_ gen.SelectionMerger   = Merger{}
)
