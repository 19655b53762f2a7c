// Package python provides metadata indexes over Python distributions.
//
// # Overview
//
// Two implementations of [deps.Index] are available:
//
//   - [SiteIndex]: installed distributions found in site-packages
//     directories (*.dist-info and *.egg-info)
//   - [LockIndex]: locked distributions listed in a poetry.lock file
//
// # Site Packages
//
// [NewSiteIndex] scans directories once and remembers where each
// distribution's metadata lives. Metadata files are only read on lookup:
//
//	idx, _ := python.NewSiteIndex("/usr/lib/python3/site-packages")
//	meta, err := idx.Lookup("importlib-metadata")
//
// METADATA and PKG-INFO files use RFC 822 style headers. Requirements come
// from Requires-Dist headers or, for older egg-info installs, from
// requires.txt, where "[extra:marker]" sections become environment markers.
//
// # Package Name Normalization
//
// Lookups use [deps.Normalize] and additionally treat dots like hyphens, so
// "zope.interface" finds a zope_interface-*.dist-info directory.
//
// [deps.Index]: github.com/matzehuels/depinfo/pkg/deps.Index
// [deps.Normalize]: github.com/matzehuels/depinfo/pkg/deps.Normalize
package python
