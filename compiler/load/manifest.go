package load

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/clientgen/compiler/gen"
)

// Manifest declares the client fields of a project.
type Manifest struct {
	ClientFields []FieldSpec `yaml:"clientFields"`
}

// FieldSpec declares one client field.
type FieldSpec struct {
	// Parent is the type the field is attached to.
	Parent string `yaml:"parent"`
	Name   string `yaml:"name"`
	// File is the source file exporting the field's function, relative to
	// the project root.
	File string `yaml:"file"`
	// Export defaults to Name.
	Export  string `yaml:"export,omitempty"`
	Variant string `yaml:"variant,omitempty"`
	Refetch bool   `yaml:"refetch,omitempty"`
	// Output is the TypeScript output type expression. Component fields
	// always output a React component and cannot set it.
	Output      string `yaml:"output,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Select is the selection set in GraphQL syntax. A field without one
	// loads but cannot be generated.
	Select string `yaml:"select,omitempty"`
}

// ExportName returns the name of the exported function.
func (f FieldSpec) ExportName() string {
	if f.Export != "" {
		return f.Export
	}
	return f.Name
}

// LoadManifest reads the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gen.NewSchemaError("", "", "read manifest", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	m := &Manifest{}
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, gen.NewSchemaError("", "", "parse manifest", err)
	}
	return m, nil
}
