package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("// Generated. Do not edit.")(c)

		require.NoError(t, err)
		assert.Equal(t, "// Generated. Do not edit.", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestRequiredStringOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   func(string) Option
		value string
		get   func(*Config) string
	}{
		{"project root", WithProjectRoot, "/app", func(c *Config) string { return c.ProjectRoot }},
		{"artifact directory", WithArtifactDirectory, "src/__generated__", func(c *Config) string { return c.ArtifactDirectory }},
		{"runtime module", WithRuntimeModule, "@acme/runtime", func(c *Config) string { return c.RuntimeModule }},
		{"client fields", WithClientFields, "fields.yaml", func(c *Config) string { return c.ClientFields }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			require.NoError(t, tt.opt(tt.value)(c))
			assert.Equal(t, tt.value, tt.get(c))

			err := tt.opt("")(&Config{})
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestWithFileExtension(t *testing.T) {
	tests := []struct {
		ext     string
		wantErr bool
	}{
		{".ts", false},
		{".tsx", false},
		{"ts", true},
		{".", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			c := &Config{}
			err := WithFileExtension(tt.ext)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ext, c.Extension)
		})
	}
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 4, c.WorkerCount())

	require.Error(t, WithWorkers(0)(c))
	require.Error(t, WithWorkers(-1)(c))
}

func TestWithSchema(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithSchema("a.graphql", "b.graphql")(c))
	require.NoError(t, WithSchema("c.graphql")(c))
	assert.Equal(t, []string{"a.graphql", "b.graphql", "c.graphql"}, c.Schema)

	err := WithSchema("ok.graphql", "")(&Config{})
	assert.True(t, IsConfigError(err))
}

func TestApply(t *testing.T) {
	t.Run("stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithProjectRoot("/app"),
			WithWorkers(0),
			WithHeader("// h"),
		)

		require.Error(t, err)
		assert.Equal(t, "/app", c.ProjectRoot)
		assert.Empty(t, c.Header)
	})

	t.Run("ApplyAll collects every error", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithProjectRoot(""),
			WithWorkers(0),
			WithHeader("// h"),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ProjectRoot")
		assert.Contains(t, err.Error(), "Workers")
		assert.Equal(t, "// h", c.Header)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		c, err := NewConfig()

		require.NoError(t, err)
		assert.Equal(t, DefaultArtifactDirectory, c.ArtifactDirectory)
		assert.Equal(t, DefaultRuntimeModule, c.RuntimeModule)
		assert.Equal(t, DefaultExtension, c.Extension)
	})

	t.Run("returns option error", func(t *testing.T) {
		_, err := NewConfig(WithRuntimeModule(""))
		assert.True(t, IsConfigError(err))
	})

	t.Run("MustNewConfig panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithWorkers(-2)) })
		assert.NotPanics(t, func() { MustNewConfig(WithWorkers(2)) })
	})
}

func TestConfigAccessors(t *testing.T) {
	t.Run("artifact root is resolved against the project root", func(t *testing.T) {
		c := &Config{ProjectRoot: "/app", ArtifactDirectory: "src/__generated__"}
		assert.Equal(t, "/app/src/__generated__", c.ArtifactRoot())
	})

	t.Run("absolute artifact directory is kept", func(t *testing.T) {
		c := &Config{ProjectRoot: "/app", ArtifactDirectory: "/out/gen/"}
		assert.Equal(t, "/out/gen", c.ArtifactRoot())
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		c := &Config{}
		assert.Equal(t, DefaultRuntimeModule, c.Runtime())
		assert.Equal(t, DefaultExtension, c.FileExtension())
		assert.Positive(t, c.WorkerCount())
	})
}
