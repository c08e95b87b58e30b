// Package load builds a validated schema.Schema from GraphQL SDL files and
// a YAML client-field manifest.
package load

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/schema"
)

// LoadSchema reads and parses the SDL files at paths as one schema.
func LoadSchema(paths ...string) (*ast.Schema, error) {
	if len(paths) == 0 {
		return nil, gen.NewSchemaError("", "", "no schema files", gen.ErrMissingConfig)
	}
	sources := make([]*ast.Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, gen.NewSchemaError("", "", "read schema", err)
		}
		sources = append(sources, &ast.Source{Name: p, Input: string(data)})
	}
	return ParseSchema(sources...)
}

// ParseSchema parses and validates SDL sources.
func ParseSchema(sources ...*ast.Source) (*ast.Schema, error) {
	src, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, gen.NewSchemaError("", "", "parse schema", err)
	}
	return src, nil
}

// objects converts the object and interface types of src, in name order.
// Built-in and introspection types are skipped.
func objects(src *ast.Schema) *schema.Schema {
	s := schema.New(src)
	names := make([]string, 0, len(src.Types))
	for name, def := range src.Types {
		if !composite(def) || def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := src.Types[name]
		s.AddObject(&schema.Object{
			Name:        def.Name,
			Description: def.Description,
			Abstract:    def.Kind == ast.Interface,
		})
	}
	// Fields are resolved once every object has an ID.
	for _, o := range s.Objects {
		for _, fd := range src.Types[o.Name].Fields {
			if strings.HasPrefix(fd.Name, "__") {
				continue
			}
			f := &schema.ServerField{Name: fd.Name, Type: fd.Type, Arguments: fd.Arguments}
			if target, ok := s.ObjectByName(fd.Type.Name()); ok {
				f.Linked, f.Target = true, target.ID
			}
			o.Fields = append(o.Fields, f)
		}
	}
	return s
}

func composite(def *ast.Definition) bool {
	return def.Kind == ast.Object || def.Kind == ast.Interface
}

// Load reads the schema files and the manifest and builds the schema.
func Load(schemaPaths []string, manifestPath string) (*schema.Schema, error) {
	src, err := LoadSchema(schemaPaths...)
	if err != nil {
		return nil, err
	}
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	s, err := Build(src, m)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", manifestPath, err)
	}
	return s, nil
}
