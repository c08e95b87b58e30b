// Package gen generates the TypeScript artifacts of client fields.
//
// For every client field it produces three interlinked modules, written
// under the artifact root at Type/field/:
//
//	Type/field/
//	├── reader.ts       // default export: the reader artifact record
//	├── param_type.ts   // export type Type__field__param
//	└── output_type.ts  // export type Type__field__output_type
//
// The reader module's `kind` discriminator is one of EagerReaderArtifact,
// ComponentReaderArtifact or RefetchReaderArtifact.
//
// # Architecture
//
//	schema.Schema + schema.ClientField
//	        ↓
//	   Generator.EagerReader / Generator.RefetchReader
//	        ├── Collaborators (reader AST, parameter type, selection merge)
//	        ├── ImportPathForSource (function import)
//	        └── ImportSet → import statements
//	        ↓
//	   artifactPlan (every derived name, built once)
//	        ↓
//	   Artifacts [reader, param_type, output_type]
//	        ↓
//	   ArtifactWriter (parallel writes, manifest of fingerprints)
//
// Generation is a pure function of its inputs: a Generator holds no mutable
// state, so client fields may be generated concurrently and repeated calls
// yield byte-identical artifacts.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: schema or manifest definition errors
//   - SelectionError: selections that do not resolve
//   - ConfigError: configuration errors
//   - GenerationError: rendering and write errors
//   - PreconditionError: inputs upstream stages must never produce, such as a
//     client field without a selection set
//
// A PreconditionError means a bug upstream; drivers should abort the run:
//
//	arts, err := g.EagerReader(s, field, state)
//	if gen.IsPreconditionError(err) {
//	    // report as an internal error and stop
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithProjectRoot("."),
//	    gen.WithArtifactDirectory("src/__generated__"),
//	    gen.WithRuntimeModule("@isograph/react"),
//	)
package gen
