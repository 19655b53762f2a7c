package python

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/depinfo/pkg/deps"
	"github.com/matzehuels/depinfo/pkg/errors"
)

// maxLineSize bounds a single metadata line. Long descriptions are usually
// split across continuation lines, but some tools write them on one.
const maxLineSize = 1 << 20

// Distribution is the parsed header block of a METADATA or PKG-INFO file.
type Distribution struct {
	Name     string   // Name header as written by the distribution
	Version  string   // Version header
	Summary  string   // One-line description (may be empty)
	Requires []string // Raw Requires-Dist values, in file order
}

// Metadata converts the distribution to index metadata.
func (d *Distribution) Metadata() *deps.Metadata {
	return &deps.Metadata{Version: d.Version, Requires: d.Requires}
}

// ParseMetadata reads the header block of a core metadata file.
//
// Headers end at the first empty line or at the first line that is neither
// a "Key: value" line nor a continuation indented with a space or tab. The
// body (long description) is ignored. Continuation lines may hold arbitrary
// text, including control characters.
func ParseMetadata(r io.Reader) (*Distribution, error) {
	h, err := readHeaders(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "reading metadata headers")
	}

	d := &Distribution{
		Name:    h.get("name"),
		Version: h.get("version"),
		Summary: h.get("summary"),
	}
	if d.Version == "" {
		return nil, errors.New(errors.ErrCodeInvalidMetadata, "metadata for %q has no Version", d.Name)
	}
	for _, req := range h["requires-dist"] {
		if req = strings.TrimSpace(req); req != "" {
			d.Requires = append(d.Requires, req)
		}
	}
	return d, nil
}

// headers maps lower-cased header names to their values in file order.
type headers map[string][]string

func (h headers) get(key string) string {
	if v := h[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func readHeaders(r io.Reader) (headers, error) {
	h := make(headers)
	var key string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			break
		}
		if line[0] == ' ' || line[0] == '\t' {
			if key != "" {
				vals := h[key]
				vals[len(vals)-1] += "\n" + strings.TrimSpace(line)
			}
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || !validHeaderName(name) {
			break
		}
		key = strings.ToLower(name)
		h[key] = append(h[key], strings.TrimSpace(value))
	}
	return h, sc.Err()
}

// validHeaderName reports whether name consists of printable ASCII
// characters other than space and colon.
func validHeaderName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}

// parseRequiresTxt converts an egg-info requires.txt file to requirement
// strings. Requirements under a "[extra:marker]" section header get the
// section as an environment marker, so "[docs]" yields `; extra == "docs"`
// and "[:python_version < '3.12']" yields `; python_version < '3.12'`.
func parseRequiresTxt(r io.Reader) ([]string, error) {
	var reqs []string
	var suffix string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '[' && line[len(line)-1] == ']' {
			suffix = sectionMarker(line[1 : len(line)-1])
			continue
		}
		reqs = append(reqs, line+suffix)
	}
	return reqs, sc.Err()
}

// sectionMarker returns the marker suffix for a requires.txt section name.
func sectionMarker(section string) string {
	extra, markers, _ := strings.Cut(section, ":")
	extra = strings.TrimSpace(extra)
	markers = strings.TrimSpace(markers)

	var conditions []string
	if markers != "" {
		if extra != "" {
			markers = "(" + markers + ")"
		}
		conditions = append(conditions, markers)
	}
	if extra != "" {
		conditions = append(conditions, `extra == "`+extra+`"`)
	}
	if len(conditions) == 0 {
		return ""
	}
	return "; " + strings.Join(conditions, " and ")
}
