package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ArtifactWriter materializes artifacts under an artifact root with
// parallel writes. Files whose content did not change since the previous
// run are left untouched, and files of the previous run that are no longer
// generated are removed.
type ArtifactWriter struct {
	root    string
	ext     string
	workers int

	// Metrics for the last Write
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks what a Write did.
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	FilesRemoved   int
	TotalBytes     int64
}

// NewArtifactWriter creates a writer rooted at root.
func NewArtifactWriter(root string) *ArtifactWriter {
	return &ArtifactWriter{
		root:    root,
		ext:     DefaultExtension,
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel workers.
func (w *ArtifactWriter) WithWorkers(n int) *ArtifactWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithExtension sets the extension appended to artifact file names.
func (w *ArtifactWriter) WithExtension(ext string) *ArtifactWriter {
	if ext != "" {
		w.ext = ext
	}
	return w
}

// Metrics returns a snapshot of the metrics of the last Write.
func (w *ArtifactWriter) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// fileTask represents a single file to write.
type fileTask struct {
	name    string // slash-separated path relative to root
	content string
	sum     uint64
}

// Write writes every artifact of sets.
func (w *ArtifactWriter) Write(ctx context.Context, sets []Artifacts) error {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return NewGenerationError("write", w.root, "create artifact directory", err)
	}
	prev, err := readManifest(w.root)
	if err != nil {
		return NewGenerationError("write", ManifestFile, "read manifest", err)
	}
	w.mu.Lock()
	w.metrics = WriterMetrics{}
	w.mu.Unlock()

	next := newManifest()
	var files []fileTask
	for _, set := range sets {
		for _, a := range set {
			name := a.Path(w.ext)
			if _, dup := next.Files[name]; dup {
				return NewGenerationError("write", name, "artifact generated twice", nil)
			}
			f := fileTask{name: name, content: a.Content, sum: fingerprint(a.Content)}
			next.Files[name] = f.sum
			files = append(files, f)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f, prev)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if err := w.removeStale(prev, next); err != nil {
		return err
	}
	if err := writeManifest(w.root, next); err != nil {
		return NewGenerationError("write", ManifestFile, "write manifest", err)
	}
	return nil
}

// writeFile writes a single file unless it is unchanged.
func (w *ArtifactWriter) writeFile(f fileTask, prev *manifest) error {
	fullPath := filepath.Join(w.root, filepath.FromSlash(f.name))
	if sum, ok := prev.Files[f.name]; ok && sum == f.sum && w.unchanged(fullPath, f.content) {
		w.mu.Lock()
		w.metrics.FilesUnchanged++
		w.mu.Unlock()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError("write", f.name, "create directory", err)
	}
	if err := os.WriteFile(fullPath, []byte(f.content), 0o644); err != nil {
		return NewGenerationError("write", f.name, "write file", err)
	}

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(f.content))
	w.mu.Unlock()
	return nil
}

// unchanged guards against files edited or deleted behind our back.
func (w *ArtifactWriter) unchanged(fullPath, content string) bool {
	data, err := os.ReadFile(fullPath)
	return err == nil && bytes.Equal(data, []byte(content))
}

// removeStale deletes files recorded in prev but absent from next, then
// prunes directories left empty.
func (w *ArtifactWriter) removeStale(prev, next *manifest) error {
	var stale []string
	for name := range prev.Files {
		if _, ok := next.Files[name]; !ok {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)

	dirs := make(map[string]struct{})
	for _, name := range stale {
		fullPath := filepath.Join(w.root, filepath.FromSlash(name))
		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			return NewGenerationError("write", name, "remove stale artifact", err)
		}
		w.mu.Lock()
		w.metrics.FilesRemoved++
		w.mu.Unlock()
		for dir := filepath.Dir(fullPath); w.within(dir); dir = filepath.Dir(dir) {
			dirs[dir] = struct{}{}
		}
	}

	// Deepest first so parents are empty by the time they are visited.
	ordered := make([]string, 0, len(dirs))
	for d := range dirs {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return strings.Count(ordered[i], string(filepath.Separator)) > strings.Count(ordered[j], string(filepath.Separator))
	})
	for _, d := range ordered {
		entries, err := os.ReadDir(d)
		if err == nil && len(entries) == 0 {
			_ = os.Remove(d)
		}
	}
	return nil
}

// within reports whether dir is strictly inside the root.
func (w *ArtifactWriter) within(dir string) bool {
	rel, err := filepath.Rel(w.root, dir)
	return err == nil && rel != "." && !strings.HasPrefix(rel, "..")
}

// String implements fmt.Stringer.
func (m WriterMetrics) String() string {
	return fmt.Sprintf("%d written, %d unchanged, %d removed (%d bytes)",
		m.FilesWritten, m.FilesUnchanged, m.FilesRemoved, m.TotalBytes)
}
