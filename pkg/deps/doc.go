// Package deps builds dependency reports for installed Python distributions.
//
// # Overview
//
// A report starts at a root distribution and follows its requirements
// breadth-first through an [Index] of installed metadata:
//
//	report, err := deps.FromRoot(idx, "depinfo", []string{"pip", "setuptools"}, 1)
//	for name, version := range report.UniqueRequirements("missing", 1) {
//	    fmt.Println(name, version)
//	}
//
// # Packages
//
// [FromName] turns a distribution name into a [Package]. Names are
// normalized first (see [Normalize]) and requirement strings are reduced to
// the distribution name they start with (see [RequirementName]). A name the
// index does not know becomes a missing package instead of an error.
//
// # Depth
//
// Depth is the breadth-first distance from the root. Requirements of a
// package at depth L are followed only while L < maxDepth, so a report with
// maxDepth 0 contains the root alone (plus build tools). Each distinct name
// is resolved once, at the smallest depth it is reached.
//
// # Build Tools
//
// Build tools (pip, setuptools, wheel, ...) are resolved in addition to the
// requirement tree and independently of the depth bound.
//
// # Indexes
//
// [Index] is the only way a report reads metadata. [MapIndex] serves tests
// and callers that already hold metadata in memory; the [python] subpackage
// reads site-packages directories and poetry.lock files.
//
// [python]: github.com/matzehuels/depinfo/pkg/deps/python
package deps
