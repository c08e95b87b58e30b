package gen

import (
	"errors"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithProjectRoot sets the project root directory.
// Client field source paths are resolved against it.
func WithProjectRoot(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("ProjectRoot", nil, "project root cannot be empty")
		}
		c.ProjectRoot = dir
		return nil
	}
}

// WithArtifactDirectory sets the output directory.
// Relative directories are resolved against the project root.
func WithArtifactDirectory(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("ArtifactDirectory", nil, "artifact directory cannot be empty")
		}
		c.ArtifactDirectory = dir
		return nil
	}
}

// WithRuntimeModule sets the module framework types are imported from.
// For example: "@isograph/react".
func WithRuntimeModule(module string) Option {
	return func(c *Config) error {
		if module == "" {
			return NewConfigError("RuntimeModule", nil, "runtime module cannot be empty")
		}
		c.RuntimeModule = module
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithFileExtension sets the extension of generated files, e.g. ".ts".
func WithFileExtension(ext string) Option {
	return func(c *Config) error {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return NewConfigError("Extension", ext, "extension must start with a dot")
		}
		c.Extension = ext
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithSchema adds GraphQL SDL files.
func WithSchema(paths ...string) Option {
	return func(c *Config) error {
		for _, p := range paths {
			if p == "" {
				return NewConfigError("Schema", nil, "schema path cannot be empty")
			}
		}
		c.Schema = append(c.Schema, paths...)
		return nil
	}
}

// WithClientFields sets the client field manifest.
func WithClientFields(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("ClientFields", nil, "client field manifest cannot be empty")
		}
		c.ClientFields = path
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		ArtifactDirectory: DefaultArtifactDirectory,
		RuntimeModule:     DefaultRuntimeModule,
		Extension:         DefaultExtension,
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
