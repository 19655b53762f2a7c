package display

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/depinfo/pkg/deps"
)

func renderMarkdown(r *deps.Report, maxDepth int) string {
	var b strings.Builder
	for _, s := range sections(r, markdownMissing, maxDepth) {
		fmt.Fprintf(&b, "\n### %s\n\n", s.title)
		for _, line := range formatTable(s.header, s.rows) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// formatTable formats rows as a two-column markdown table. Column widths
// cover the header and every row; the name column is left-aligned and the
// version column right-aligned.
func formatTable(header [2]string, rows Pairs) []string {
	nameWidth, versionWidth, err := rows.Widths()
	if err != nil {
		nameWidth, versionWidth = 0, 0
	}
	nameWidth = max(nameWidth, utf8.RuneCountInString(header[0]))
	versionWidth = max(versionWidth, utf8.RuneCountInString(header[1]))

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines,
		fmt.Sprintf("| %s | %s |", center(header[0], nameWidth), center(header[1], versionWidth)),
		fmt.Sprintf("|:%s-|-%s:|", strings.Repeat("-", nameWidth), strings.Repeat("-", versionWidth)),
	)
	for _, p := range rows {
		lines = append(lines, fmt.Sprintf("| %-*s | %*s |", nameWidth, p.Name, versionWidth, p.Version))
	}
	return lines
}
