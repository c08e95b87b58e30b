package gen

import (
	"path/filepath"
	"runtime"

	"github.com/syssam/clientgen/schema"
)

// Defaults applied by NewConfig.
const (
	DefaultRuntimeModule     = "@isograph/react"
	DefaultArtifactDirectory = "__generated__"
	DefaultExtension         = ".ts"
)

// Config holds the global configuration for artifact generation.
type Config struct {
	// ProjectRoot is the directory client field source paths are relative to.
	ProjectRoot string
	// ArtifactDirectory is where artifacts are written. Relative paths are
	// resolved against ProjectRoot.
	ArtifactDirectory string
	// RuntimeModule is the module generated files import framework types from.
	RuntimeModule string
	// Header is prepended to every artifact when non-empty.
	Header string
	// Extension is appended to artifact file name tags.
	Extension string
	// Workers bounds parallel generation and writes.
	Workers int
	// Schema lists the GraphQL SDL files.
	Schema []string
	// ClientFields is the client field manifest.
	ClientFields string
}

// ArtifactRoot returns the artifact directory resolved against the project root.
func (c *Config) ArtifactRoot() string {
	if filepath.IsAbs(c.ArtifactDirectory) || c.ProjectRoot == "" {
		return filepath.Clean(c.ArtifactDirectory)
	}
	return filepath.Join(c.ProjectRoot, c.ArtifactDirectory)
}

// Runtime returns the framework module, falling back to DefaultRuntimeModule.
func (c *Config) Runtime() string {
	if c.RuntimeModule == "" {
		return DefaultRuntimeModule
	}
	return c.RuntimeModule
}

// FileExtension returns the artifact extension, falling back to DefaultExtension.
func (c *Config) FileExtension() string {
	if c.Extension == "" {
		return DefaultExtension
	}
	return c.Extension
}

// WorkerCount returns the number of parallel workers to use.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// FunctionImport builds the import statement for the function implementing
// a client field.
func (c *Config) FunctionImport(info schema.UserWrittenInfo) (string, error) {
	p, err := ImportPathForSource(c.ProjectRoot, c.ArtifactRoot(), info.FilePath)
	if err != nil {
		return "", err
	}
	return FunctionImportStatement(info.ExportName, p), nil
}
