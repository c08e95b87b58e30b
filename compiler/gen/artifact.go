package gen

import "path"

// FileName is the tag of an artifact file, without extension.
type FileName string

// Artifact file names. Every client field produces one of each.
const (
	ReaderFile     FileName = "reader"
	ParamTypeFile  FileName = "param_type"
	OutputTypeFile FileName = "output_type"
)

// Artifact is one generated file.
type Artifact struct {
	// Dir is relative to the artifact root, e.g. "User/displayName".
	Dir     string
	Name    FileName
	Content string
}

// Path returns the artifact path relative to the artifact root.
func (a Artifact) Path(ext string) string {
	return path.Join(a.Dir, string(a.Name)+ext)
}

// Artifacts is the triple generated for a single client field: reader,
// parameter type and output type, in that order. The three files refer to
// each other by name and are only ever produced together.
type Artifacts [3]Artifact

// Reader returns the reader module.
func (a Artifacts) Reader() Artifact { return a[0] }

// ParamType returns the parameter type module.
func (a Artifacts) ParamType() Artifact { return a[1] }

// OutputType returns the output type module.
func (a Artifacts) OutputType() Artifact { return a[2] }

// ParamTypeName is the parameter type alias of parentType.fieldName.
func ParamTypeName(parentType, fieldName string) string {
	return parentType + "__" + fieldName + "__param"
}

// OutputTypeName is the output type alias of parentType.fieldName.
func OutputTypeName(parentType, fieldName string) string {
	return parentType + "__" + fieldName + "__output_type"
}

// ComponentName is the display name of a component client field.
func ComponentName(parentType, fieldName string) string {
	return parentType + "." + fieldName
}
