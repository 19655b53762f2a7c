package display

import (
	"fmt"
	"strings"

	"github.com/matzehuels/depinfo/pkg/deps"
)

func renderSimple(r *deps.Report, maxDepth int) string {
	var b strings.Builder
	for _, s := range sections(r, simpleMissing, maxDepth) {
		writeSimpleSection(&b, s.title, s.rows)
	}
	return b.String()
}

// writeSimpleSection writes a blank line, the title, its underline and the
// rows. A section without rows ends after the underline.
func writeSimpleSection(b *strings.Builder, title string, rows Pairs) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	for _, line := range formatPairs(rows) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// formatPairs aligns names left and versions right in two fixed-width columns.
func formatPairs(rows Pairs) []string {
	nameWidth, versionWidth, err := rows.Widths()
	if err != nil {
		return nil
	}
	lines := make([]string, 0, len(rows))
	for _, p := range rows {
		lines = append(lines, fmt.Sprintf("%-*s %*s", nameWidth, p.Name, versionWidth, p.Version))
	}
	return lines
}
