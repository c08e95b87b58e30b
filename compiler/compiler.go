// Package compiler drives artifact generation for a whole project: it loads
// the schema and the client field manifest, generates the artifacts of every
// client field and writes them to the artifact directory.
package compiler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/compiler/load"
	"github.com/syssam/clientgen/compiler/reader"
	"github.com/syssam/clientgen/schema"
)

// Compiler compiles one project.
type Compiler struct {
	cfg      *gen.Config
	log      *zap.Logger
	collab   gen.Collaborators
	debounce time.Duration

	generator *gen.Generator
	writer    *gen.ArtifactWriter
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCollaborators replaces the selection-set stages used by the generator.
func WithCollaborators(collab gen.Collaborators) Option {
	return func(c *Compiler) {
		c.collab = collab
	}
}

// WithDebounce sets how long Watch waits for file events to settle.
func WithDebounce(d time.Duration) Option {
	return func(c *Compiler) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// New returns a Compiler for cfg.
func New(cfg *gen.Config, opts ...Option) (*Compiler, error) {
	c := &Compiler{
		cfg:      cfg,
		log:      zap.NewNop(),
		collab:   reader.Collaborators(),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(c)
	}
	g, err := gen.NewGenerator(cfg, c.collab)
	if err != nil {
		return nil, err
	}
	c.generator = g
	c.writer = gen.NewArtifactWriter(cfg.ArtifactRoot()).
		WithWorkers(cfg.WorkerCount()).
		WithExtension(cfg.FileExtension())
	return c, nil
}

// Result summarizes a compilation.
type Result struct {
	Schema       *schema.Schema
	ClientFields int
	Artifacts    []gen.Artifacts
	Metrics      gen.WriterMetrics
	Duration     time.Duration
}

// Load loads the schema and manifest named by the config.
func (c *Compiler) Load() (*schema.Schema, error) {
	if len(c.cfg.Schema) == 0 {
		return nil, gen.NewConfigError("Schema", nil, "no schema files configured")
	}
	if c.cfg.ClientFields == "" {
		return nil, gen.NewConfigError("ClientFields", nil, "no client field manifest configured")
	}
	paths := make([]string, len(c.cfg.Schema))
	for i, p := range c.cfg.Schema {
		paths[i] = resolve(c.cfg, p)
	}
	return load.Load(paths, resolve(c.cfg, c.cfg.ClientFields))
}

// Compile loads the project, generates every artifact and writes them.
// Nothing is written unless every client field generates.
func (c *Compiler) Compile(ctx context.Context) (*Result, error) {
	start := time.Now()
	s, err := c.Load()
	if err != nil {
		return nil, err
	}
	arts, err := c.Generate(ctx, s)
	if err != nil {
		return nil, err
	}
	if err := c.writer.Write(ctx, arts); err != nil {
		return nil, err
	}

	res := &Result{
		Schema:       s,
		ClientFields: len(s.ClientFields),
		Artifacts:    arts,
		Metrics:      c.writer.Metrics(),
		Duration:     time.Since(start),
	}
	c.log.Info("compiled",
		zap.Int("client_fields", res.ClientFields),
		zap.Int("written", res.Metrics.FilesWritten),
		zap.Int("unchanged", res.Metrics.FilesUnchanged),
		zap.Int("removed", res.Metrics.FilesRemoved),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// Generate generates the artifacts of every client field of s in parallel.
// The result follows the declaration order of s.ClientFields. The first
// error cancels the remaining work.
func (c *Compiler) Generate(ctx context.Context, s *schema.Schema) ([]gen.Artifacts, error) {
	out := make([]gen.Artifacts, len(s.ClientFields))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.WorkerCount())
	for i, field := range s.ClientFields {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			arts, err := c.generate(s, field)
			if err != nil {
				return err
			}
			out[i] = arts
			c.log.Debug("generated", zap.String("dir", arts.Reader().Dir))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		if gen.IsPreconditionError(err) {
			c.log.Error("internal error", zap.Error(err))
		}
		return nil, err
	}
	return out, nil
}

func (c *Compiler) generate(s *schema.Schema, field *schema.ClientField) (gen.Artifacts, error) {
	if field.Refetch {
		stmt, err := c.generator.FunctionImport(s, field)
		if err != nil {
			return gen.Artifacts{}, err
		}
		return c.generator.RefetchReader(s, field, stmt)
	}
	return c.generator.EagerReader(s, field, c.traverse(s, field))
}

// traverse collects the refetch paths reachable from field.
func (c *Compiler) traverse(s *schema.Schema, field *schema.ClientField) gen.TraversalState {
	parent := s.Object(field.Parent)
	if parent == nil || !field.HasSelectionSet() {
		return gen.TraversalState{}
	}
	_, paths := c.collab.Merger.MergeSelectionSet(s, parent, field.Selections)
	return gen.TraversalState{RefetchPaths: paths}
}

// String implements fmt.Stringer.
func (r *Result) String() string {
	return fmt.Sprintf("%d client fields: %s in %s", r.ClientFields, r.Metrics.String(), r.Duration.Round(time.Millisecond))
}
