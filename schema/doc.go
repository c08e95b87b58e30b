// Package schema provides the validated, read-only data model consumed by the
// artifact generators.
//
// A Schema is produced once per compilation run by the loader in
// compiler/load and is never mutated afterwards, so it can be shared by any
// number of concurrent generators.
//
// # Model
//
//	Schema
//	├── Objects []*Object          // object and interface types, indexed by ObjectID
//	│   ├── Fields []*ServerField  // fields declared in the GraphQL SDL
//	│   └── ClientFields           // client fields attached to the type
//	└── ClientFields []*ClientField // every client field, in declaration order
//
// A ClientField carries its selection set, the pre-rendered TypeScript
// expression describing what its function returns, and the authoring metadata
// (source file, exported name, variant) needed to import that function.
//
// # Selections
//
// Selections come in four kinds:
//
//   - SelectScalar: a server field with a scalar or enum type
//   - SelectLinked: a server field with an object type and a nested selection set
//   - SelectResolver: another client field on the same type
//   - SelectRefetch: the reserved __refetch field of a refetchable type
//
// RefetchPath values describe where __refetch selections are reachable from
// the root of a selection set. They are computed by selection-set merging.
package schema
