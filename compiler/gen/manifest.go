package gen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// ManifestFile is the name of the manifest kept in the artifact root.
const ManifestFile = ".clientgen.manifest"

const manifestVersion = 1

// manifest records the artifacts of the previous run and their
// fingerprints, keyed by slash-separated path relative to the artifact root.
type manifest struct {
	Version int               `msgpack:"version"`
	Files   map[string]uint64 `msgpack:"files"`
}

func newManifest() *manifest {
	return &manifest{Version: manifestVersion, Files: make(map[string]uint64)}
}

// fingerprint identifies file content.
func fingerprint(content string) uint64 {
	return xxhash.Sum64String(content)
}

// readManifest loads the manifest in root. A missing, unreadable or
// outdated manifest yields an empty one, which makes every file look new.
func readManifest(root string) (*manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return newManifest(), nil
	}
	if err != nil {
		return nil, err
	}
	m := newManifest()
	if err := msgpack.Unmarshal(data, m); err != nil || m.Version != manifestVersion || m.Files == nil {
		return newManifest(), nil
	}
	return m, nil
}

func writeManifest(root string, m *manifest) error {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, ManifestFile), data, 0o644)
}
