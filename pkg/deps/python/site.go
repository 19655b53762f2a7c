package python

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/depinfo/pkg/deps"
	"github.com/matzehuels/depinfo/pkg/errors"
)

const (
	distInfoSuffix = ".dist-info"
	eggInfoSuffix  = ".egg-info"
)

// SiteIndex is a [deps.Index] over installed distributions in one or more
// site-packages directories.
type SiteIndex struct {
	dists map[string]distLocation
	dirs  []string
}

type distLocation struct {
	path  string // *.dist-info or *.egg-info path
	isDir bool
	egg   bool
}

// NewSiteIndex scans dirs for distribution metadata. Directories that do not
// exist are skipped. When a distribution is installed in several directories
// the first one wins.
func NewSiteIndex(dirs ...string) (*SiteIndex, error) {
	s := &SiteIndex{dists: make(map[string]distLocation)}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "scanning %s", dir)
		}
		s.dirs = append(s.dirs, dir)
		for _, e := range entries {
			loc, name, ok := distEntry(dir, e)
			if !ok {
				continue
			}
			if _, seen := s.dists[name]; !seen {
				s.dists[name] = loc
			}
		}
	}
	return s, nil
}

// Dirs returns the directories that were scanned successfully.
func (s *SiteIndex) Dirs() []string { return s.dirs }

// Len returns the number of distributions found.
func (s *SiteIndex) Len() int { return len(s.dists) }

// Lookup implements [deps.Index].
func (s *SiteIndex) Lookup(name string) (*deps.Metadata, error) {
	loc, ok := s.dists[canonical(name)]
	if !ok {
		return nil, deps.NotFound(name)
	}
	return loc.read()
}

func (l distLocation) read() (*deps.Metadata, error) {
	file := l.path
	switch {
	case !l.isDir:
	case l.egg:
		file = filepath.Join(l.path, "PKG-INFO")
	default:
		file = filepath.Join(l.path, "METADATA")
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "opening %s", file)
	}
	defer f.Close()

	dist, err := ParseMetadata(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "parsing %s", file)
	}

	if l.egg && l.isDir && len(dist.Requires) == 0 {
		reqs, err := readRequiresTxt(filepath.Join(l.path, "requires.txt"))
		if err != nil {
			return nil, err
		}
		dist.Requires = reqs
	}
	return dist.Metadata(), nil
}

func readRequiresTxt(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "opening %s", path)
	}
	defer f.Close()

	reqs, err := parseRequiresTxt(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "reading %s", path)
	}
	return reqs, nil
}

// distEntry recognizes "<name>-<version>.dist-info" directories and
// "<name>[-<version>[-pyX.Y]].egg-info" directories or files.
func distEntry(dir string, e fs.DirEntry) (distLocation, string, bool) {
	base := e.Name()
	var stem string
	var egg bool
	switch {
	case strings.HasSuffix(base, distInfoSuffix) && e.IsDir():
		stem = strings.TrimSuffix(base, distInfoSuffix)
	case strings.HasSuffix(base, eggInfoSuffix):
		stem = strings.TrimSuffix(base, eggInfoSuffix)
		egg = true
	default:
		return distLocation{}, "", false
	}

	name, _, _ := strings.Cut(stem, "-")
	if name == "" {
		return distLocation{}, "", false
	}
	loc := distLocation{
		path:  filepath.Join(dir, base),
		isDir: e.IsDir(),
		egg:   egg,
	}
	return loc, canonical(name), true
}

// canonical extends deps.Normalize so that dotted and underscored spellings
// of the same name meet.
func canonical(name string) string {
	return strings.ReplaceAll(deps.Normalize(name), ".", "-")
}
