// Package display renders dependency reports as text tables.
//
// Two formats are supported, selected with a [Format] value:
//
//   - [Simple]: titled sections with underlines and aligned columns
//   - [Markdown]: "###" headings followed by pipe tables
//
// Both formats print the same four sections in the same order: package,
// dependency, build tools and platform information. Rows are sorted by name
// except in the single-row package section.
//
//	if err := display.Render(os.Stdout, report, display.Markdown, 1); err != nil {
//	    return err
//	}
package display
