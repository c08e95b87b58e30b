package compiler

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/syssam/clientgen/compiler/gen"
	"github.com/syssam/clientgen/schema"
)

const defaultDebounce = 100 * time.Millisecond

// Watch compiles the project, then recompiles whenever the schema, the
// manifest or a client field source changes. Failed compilations are logged
// and watching continues. Watch returns when ctx is done.
func (c *Compiler) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return gen.NewGenerationError("watch", "", "create watcher", err)
	}
	defer w.Close()

	dw := &dirWatcher{watcher: w, log: c.log, exclude: c.cfg.ArtifactRoot(), dirs: make(map[string]bool)}
	c.recompile(ctx, dw)

	trigger := make(chan struct{}, 1)
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(c.debounce, func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event) || dw.excluded(event.Name) {
				continue
			}
			c.log.Debug("change detected", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			schedule()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.log.Warn("watcher error", zap.Error(err))
		case <-trigger:
			c.recompile(ctx, dw)
		}
	}
}

// recompile runs a compilation and extends the watched directories with
// any new client field sources.
func (c *Compiler) recompile(ctx context.Context, dw *dirWatcher) {
	for _, p := range c.cfg.Schema {
		dw.add(filepath.Dir(resolve(c.cfg, p)))
	}
	if c.cfg.ClientFields != "" {
		dw.add(filepath.Dir(resolve(c.cfg, c.cfg.ClientFields)))
	}

	res, err := c.Compile(ctx)
	if err != nil {
		c.log.Error("compile failed", zap.Error(err))
		return
	}
	dw.addSources(c.cfg, res.Schema)
	c.log.Info("watching for changes", zap.Stringer("result", res))
}

// dirWatcher tracks the directories added to an fsnotify watcher.
type dirWatcher struct {
	watcher *fsnotify.Watcher
	log     *zap.Logger
	exclude string
	dirs    map[string]bool
}

func (d *dirWatcher) add(dir string) {
	if d.dirs[dir] || d.excluded(dir) {
		return
	}
	if err := d.watcher.Add(dir); err != nil {
		d.log.Warn("cannot watch directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	d.dirs[dir] = true
}

func (d *dirWatcher) addSources(cfg *gen.Config, s *schema.Schema) {
	for _, f := range s.ClientFields {
		d.add(filepath.Dir(resolve(cfg, f.Info.FilePath)))
	}
}

// excluded reports whether p is the artifact root or inside it.
func (d *dirWatcher) excluded(p string) bool {
	rel, err := filepath.Rel(d.exclude, p)
	return err == nil && (rel == "." || !strings.HasPrefix(rel, ".."))
}

func relevant(e fsnotify.Event) bool {
	return e.Has(fsnotify.Write) || e.Has(fsnotify.Create) || e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename)
}
