package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/clientgen/compiler/gen"
)

// DefaultConfigFile is the config file name looked up by the CLI.
const DefaultConfigFile = "clientgen.yaml"

// fileConfig is the YAML form of gen.Config.
type fileConfig struct {
	// ProjectRoot is relative to the directory of the config file and
	// defaults to it.
	ProjectRoot string `yaml:"projectRoot"`
	// The remaining paths are relative to the project root.
	ArtifactDirectory string     `yaml:"artifactDirectory"`
	Schema            stringList `yaml:"schema"`
	ClientFields      string     `yaml:"clientFields"`

	RuntimeModule string `yaml:"runtimeModule"`
	Header        string `yaml:"header"`
	Extension     string `yaml:"extension"`
	Workers       int    `yaml:"workers"`
}

// stringList accepts either a single string or a list of strings.
type stringList []string

// UnmarshalYAML implements yaml.Unmarshaler for stringList.
func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// LoadConfig reads the YAML config file at path.
func LoadConfig(path string) (*gen.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gen.NewConfigError("file", path, err.Error())
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, gen.NewConfigError("file", path, err.Error())
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, gen.NewConfigError("file", path, err.Error())
	}
	root := dir
	if fc.ProjectRoot != "" {
		root = fc.ProjectRoot
		if !filepath.IsAbs(root) {
			root = filepath.Join(dir, root)
		}
	}

	opts := []gen.Option{gen.WithProjectRoot(root), gen.WithHeader(fc.Header)}
	if fc.ArtifactDirectory != "" {
		opts = append(opts, gen.WithArtifactDirectory(fc.ArtifactDirectory))
	}
	if fc.RuntimeModule != "" {
		opts = append(opts, gen.WithRuntimeModule(fc.RuntimeModule))
	}
	if fc.Extension != "" {
		opts = append(opts, gen.WithFileExtension(fc.Extension))
	}
	if fc.Workers != 0 {
		opts = append(opts, gen.WithWorkers(fc.Workers))
	}
	if len(fc.Schema) > 0 {
		opts = append(opts, gen.WithSchema(fc.Schema...))
	}
	if fc.ClientFields != "" {
		opts = append(opts, gen.WithClientFields(fc.ClientFields))
	}

	cfg, err := gen.NewConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve returns p relative to the project root unless it is absolute.
func resolve(cfg *gen.Config, p string) string {
	if filepath.IsAbs(p) || cfg.ProjectRoot == "" {
		return p
	}
	return filepath.Join(cfg.ProjectRoot, p)
}
