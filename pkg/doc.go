// Package pkg provides the libraries behind the depinfo command.
//
// # Overview
//
// depinfo reports the installed version of a Python package together with
// its requirements, the versions of common build tools and information about
// the platform and Python runtime. The pkg directory is organized as follows:
//
//  1. [deps] - Package model, metadata index contract and the dependency report
//  2. [deps/python] - Indexes over site-packages directories and poetry.lock files
//  3. [host] - Platform and Python runtime detection
//  4. [display] - Plain-text and markdown rendering of a report
//  5. [errors] - Coded errors and input validation
//
// # Architecture
//
// The typical data flow:
//
//	site-packages / poetry.lock
//	         ↓
//	    [deps/python] index (name → version + raw requirements)
//	         ↓
//	    [deps] report (bounded breadth-first resolution)
//	         ↓
//	    [display] (simple or markdown tables)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/depinfo/pkg/deps"
//	    "github.com/matzehuels/depinfo/pkg/deps/python"
//	    "github.com/matzehuels/depinfo/pkg/display"
//	    "github.com/matzehuels/depinfo/pkg/host"
//	)
//
//	interp, _ := host.ProbePython(context.Background(), "python3")
//	idx, _ := python.NewSiteIndex(interp.SitePackages...)
//	report, _ := deps.FromRoot(idx, "requests", []string{"pip", "setuptools"}, 1,
//	    deps.WithPython(interp.Python))
//	display.Render(os.Stdout, report, display.Simple, 1)
//
// [deps]: github.com/matzehuels/depinfo/pkg/deps
// [deps/python]: github.com/matzehuels/depinfo/pkg/deps/python
// [host]: github.com/matzehuels/depinfo/pkg/host
// [display]: github.com/matzehuels/depinfo/pkg/display
// [errors]: github.com/matzehuels/depinfo/pkg/errors
package pkg
