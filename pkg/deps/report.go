package deps

import (
	"fmt"
	"iter"
	"slices"

	"github.com/matzehuels/depinfo/pkg/host"
)

// Report holds a root package, its requirements up to a depth bound, the
// requested build tools, and information about the host.
//
// A Report is built once by [FromRoot] and must not be modified afterwards.
type Report struct {
	Root       Package            // The package the report was requested for
	Packages   map[string]Package // Every resolved package by normalized name
	BuildTools []Package          // Build tools in the order they were requested
	Platform   host.Platform      // Operating system information
	Python     host.Python        // Python runtime information
	MaxDepth   int                // Depth bound used while resolving
}

// Option configures [FromRoot].
type Option func(*options)

type options struct {
	platform *host.Platform
	python   *host.Python
	logger   func(string, ...any)
}

// WithPlatform sets the platform information instead of detecting it.
func WithPlatform(p host.Platform) Option {
	return func(o *options) { o.platform = &p }
}

// WithPython sets the Python runtime information. Without it the report
// carries [host.UnknownPython].
func WithPython(p host.Python) Option {
	return func(o *options) { o.python = &p }
}

// WithLogger sets a callback that receives one debug message per resolved package.
func WithLogger(fn func(string, ...any)) Option {
	return func(o *options) { o.logger = fn }
}

type queued struct {
	depth int
	name  string
}

// FromRoot resolves root and its requirements breadth-first.
//
// Requirements of a package found at level L are followed only while
// L < maxDepth, so maxDepth 0 resolves the root alone. Every distinct name is
// resolved exactly once, at the smallest depth it is discovered. Build tools
// are resolved regardless of maxDepth, reusing packages that were already
// found.
//
// Names missing from idx are recorded as missing packages. Only other index
// failures are returned as errors.
func FromRoot(idx Index, root string, buildTools []string, maxDepth int, opts ...Option) (*Report, error) {
	o := options{logger: func(string, ...any) {}}
	for _, opt := range opts {
		opt(&o)
	}

	root = Normalize(root)
	packages := make(map[string]Package)
	resolve := func(name, where string) (Package, error) {
		pkg, err := FromName(idx, name)
		if err != nil {
			return Package{}, err
		}
		packages[pkg.Name] = pkg
		if pkg.Missing() {
			o.logger("package %s not found (%s)", pkg.Name, where)
		} else {
			o.logger("resolved %s %s (%s)", pkg.Name, pkg.Version, where)
		}
		return pkg, nil
	}

	queue := []queued{{depth: 0, name: root}}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		if _, ok := packages[q.name]; ok {
			continue
		}
		pkg, err := resolve(q.name, fmt.Sprintf("depth %d", q.depth))
		if err != nil {
			return nil, err
		}
		if q.depth < maxDepth {
			for _, req := range pkg.Requirements {
				queue = append(queue, queued{depth: q.depth + 1, name: req})
			}
		}
	}

	tools := make([]Package, 0, len(buildTools))
	for _, name := range buildTools {
		name = Normalize(name)
		if name == "" {
			continue
		}
		if pkg, ok := packages[name]; ok {
			tools = append(tools, pkg)
			continue
		}
		pkg, err := resolve(name, "build tool")
		if err != nil {
			return nil, err
		}
		tools = append(tools, pkg)
	}

	r := &Report{
		Root:       packages[root],
		Packages:   packages,
		BuildTools: tools,
		MaxDepth:   maxDepth,
	}
	if o.platform != nil {
		r.Platform = *o.platform
	} else {
		r.Platform = host.DetectPlatform()
	}
	if o.python != nil {
		r.Python = *o.python
	} else {
		r.Python = host.UnknownPython()
	}
	return r, nil
}

// Requirements walks the resolved packages breadth-first from the root and
// yields every visited package with its depth, including repeated visits of
// shared requirements. Children are followed while depth < maxDepth.
//
// No lookups happen: requirements that were not resolved when the report was
// built (because they lie beyond the report's own depth bound) are skipped.
// Each call returns an independent sequence.
func (r *Report) Requirements(maxDepth int) iter.Seq2[int, Package] {
	return func(yield func(int, Package) bool) {
		type visit struct {
			depth int
			pkg   Package
		}
		queue := []visit{{depth: 0, pkg: r.Root}}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if v.depth < maxDepth {
				for _, name := range v.pkg.Requirements {
					if pkg, ok := r.Packages[name]; ok {
						queue = append(queue, visit{depth: v.depth + 1, pkg: pkg})
					}
				}
			}
			if !yield(v.depth, v.pkg) {
				return
			}
		}
	}
}

// UniqueRequirements yields name/version pairs from [Report.Requirements],
// each name once in order of first discovery. Missing versions are replaced
// with missingLabel.
func (r *Report) UniqueRequirements(missingLabel string, maxDepth int) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		seen := make(map[string]bool)
		for _, pkg := range r.Requirements(maxDepth) {
			if seen[pkg.Name] {
				continue
			}
			seen[pkg.Name] = true
			version := pkg.Version
			if pkg.Missing() {
				version = missingLabel
			}
			if !yield(pkg.Name, version) {
				return
			}
		}
	}
}

// MissingPackages returns the sorted names of resolved packages that have no
// installed version.
func (r *Report) MissingPackages() []string {
	var names []string
	for name, pkg := range r.Packages {
		if pkg.Missing() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
