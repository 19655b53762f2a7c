package display

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/depinfo/pkg/deps"
	"github.com/matzehuels/depinfo/pkg/errors"
)

// ErrEmptyTable is returned when column widths are requested for no rows.
var ErrEmptyTable = errors.New(errors.ErrCodeEmptyTable, "cannot format an empty table")

const (
	simpleMissing   = "missing"
	markdownMissing = "**missing**"
)

// Pair is one table row: a name and a version.
type Pair struct {
	Name    string
	Version string
}

// Pairs is a list of table rows.
type Pairs []Pair

// Widths returns the widest name and version, counted in runes.
func (p Pairs) Widths() (name, version int, err error) {
	if len(p) == 0 {
		return 0, 0, ErrEmptyTable
	}
	for _, pair := range p {
		name = max(name, utf8.RuneCountInString(pair.Name))
		version = max(version, utf8.RuneCountInString(pair.Version))
	}
	return name, version, nil
}

// SortByName sorts the rows alphabetically by name.
func (p Pairs) SortByName() {
	slices.SortStableFunc(p, func(a, b Pair) int { return cmp.Compare(a.Name, b.Name) })
}

type section struct {
	title  string
	header [2]string
	rows   Pairs
}

const (
	titlePackage    = "Package Information"
	titleDependency = "Dependency Information"
	titleBuildTools = "Build Tools Information"
	titlePlatform   = "Platform Information"
)

// sections collects the report's four sections in display order.
func sections(r *deps.Report, missing string, maxDepth int) []section {
	rootVersion := r.Root.Version
	if r.Root.Missing() {
		rootVersion = missing
	}

	var requirements Pairs
	for name, version := range r.UniqueRequirements(missing, maxDepth) {
		requirements = append(requirements, Pair{name, version})
	}
	requirements.SortByName()

	var tools Pairs
	for _, pkg := range r.BuildTools {
		if !pkg.Missing() {
			tools = append(tools, Pair{pkg.Name, pkg.Version})
		}
	}
	tools.SortByName()

	platform := Pairs{
		{r.Platform.Name, r.Platform.Version},
		{r.Python.Name, r.Python.Version},
	}
	platform.SortByName()

	return []section{
		{title: titlePackage, header: [2]string{"Package", "Version"}, rows: Pairs{{r.Root.Name, rootVersion}}},
		{title: titleDependency, header: [2]string{"Package", "Version"}, rows: requirements},
		{title: titleBuildTools, header: [2]string{"Package", "Version"}, rows: tools},
		{title: titlePlatform, header: [2]string{"", ""}, rows: platform},
	}
}

// center pads s on both sides to width runes, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
