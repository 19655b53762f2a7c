package deps

import (
	stderrors "errors"

	"github.com/matzehuels/depinfo/pkg/errors"
)

// ErrNotFound is returned by an [Index] when a distribution is not installed.
var ErrNotFound = stderrors.New("package not found")

// NotFound returns the error an [Index] reports for a name it does not hold.
// It carries [errors.ErrCodePackageNotFound] and wraps [ErrNotFound].
func NotFound(name string) error {
	return errors.Wrap(errors.ErrCodePackageNotFound, ErrNotFound, "%s", name)
}

// Metadata is the raw information an index holds about one distribution.
type Metadata struct {
	Version  string   // Installed version (never empty in valid metadata)
	Requires []string // Raw requirement strings (e.g., "zipp>=0.5", "foo; extra == 'x'")
}

// Index looks up installed distributions by normalized name.
type Index interface {
	// Lookup returns the metadata for name. An error wrapping ErrNotFound
	// signals that the distribution is not installed.
	Lookup(name string) (*Metadata, error)
}

// MapIndex is an in-memory Index keyed by normalized name.
type MapIndex map[string]Metadata

// Lookup implements Index.
func (m MapIndex) Lookup(name string) (*Metadata, error) {
	meta, ok := m[Normalize(name)]
	if !ok {
		return nil, NotFound(name)
	}
	return &meta, nil
}
