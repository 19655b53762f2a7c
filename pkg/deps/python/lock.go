package python

import (
	stderrors "errors"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depinfo/pkg/deps"
	"github.com/matzehuels/depinfo/pkg/errors"
)

// LockIndex is a [deps.Index] over the packages pinned in a poetry.lock file.
// Dependency names are listed in sorted order since TOML tables are unordered.
type LockIndex struct {
	pkgs map[string]deps.Metadata
}

type lockFile struct {
	Packages []lockPackage `toml:"package"`
}

type lockPackage struct {
	Name         string         `toml:"name"`
	Version      string         `toml:"version"`
	Dependencies map[string]any `toml:"dependencies"`
}

// LoadLockIndex reads a poetry.lock file.
func LoadLockIndex(path string) (*LockIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "lock file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}
	return ParseLock(data)
}

// ParseLock parses poetry.lock contents.
func ParseLock(data []byte) (*LockIndex, error) {
	var lock lockFile
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "decoding poetry.lock")
	}

	idx := &LockIndex{pkgs: make(map[string]deps.Metadata, len(lock.Packages))}
	for _, pkg := range lock.Packages {
		if pkg.Name == "" || pkg.Version == "" {
			return nil, errors.New(errors.ErrCodeInvalidMetadata, "poetry.lock entry %q has no name or version", pkg.Name)
		}
		name := canonical(pkg.Name)
		if _, dup := idx.pkgs[name]; dup {
			continue
		}
		idx.pkgs[name] = deps.Metadata{
			Version:  pkg.Version,
			Requires: slices.Sorted(maps.Keys(pkg.Dependencies)),
		}
	}
	return idx, nil
}

// Len returns the number of locked packages.
func (l *LockIndex) Len() int { return len(l.pkgs) }

// Lookup implements [deps.Index].
func (l *LockIndex) Lookup(name string) (*deps.Metadata, error) {
	meta, ok := l.pkgs[canonical(name)]
	if !ok {
		return nil, deps.NotFound(name)
	}
	return &meta, nil
}
