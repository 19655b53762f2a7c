package deps

import (
	stderrors "errors"
	"strings"

	"github.com/matzehuels/depinfo/pkg/errors"
)

// Package is a resolved distribution with its direct requirements.
//
// A Package whose Version is empty was not found in the index. Such packages
// are still recorded so that reports can mark them as missing.
type Package struct {
	Name         string   // Normalized distribution name (e.g., "importlib-metadata")
	Version      string   // Installed version, empty if the package is missing
	Requirements []string // Normalized names of direct requirements, in metadata order
}

// Missing reports whether the package has no installed version.
func (p Package) Missing() bool { return p.Version == "" }

// FromName resolves a distribution name against idx.
//
// The name is normalized before lookup. A name unknown to the index yields a
// missing Package rather than an error; any other index failure is returned.
func FromName(idx Index, name string) (Package, error) {
	name = Normalize(name)
	meta, err := idx.Lookup(name)
	if err != nil {
		if stderrors.Is(err, ErrNotFound) {
			return Package{Name: name}, nil
		}
		if errors.GetCode(err) != "" {
			return Package{}, err
		}
		return Package{}, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "looking up %s", name)
	}

	pkg := Package{Name: name, Version: meta.Version}
	if len(meta.Requires) > 0 {
		pkg.Requirements = make([]string, 0, len(meta.Requires))
		for _, req := range meta.Requires {
			if dep := Normalize(RequirementName(req)); dep != "" {
				pkg.Requirements = append(pkg.Requirements, dep)
			}
		}
	}
	return pkg, nil
}

// Normalize converts a distribution name to its canonical form: lower case
// with underscores replaced by hyphens. It is idempotent.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// requirementCut lists the characters that end the name part of a PEP 508
// requirement. Whitespace is handled separately.
const requirementCut = "();<>=[]!~,@"

// RequirementName returns the distribution name at the start of a raw
// requirement string such as "foo (>=1.0); extra == 'x'" or "bar[socks]>=2".
func RequirementName(req string) string {
	req = strings.TrimSpace(req)
	if i := strings.IndexFunc(req, isRequirementCut); i >= 0 {
		return req[:i]
	}
	return req
}

func isRequirementCut(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return strings.ContainsRune(requirementCut, r)
}
