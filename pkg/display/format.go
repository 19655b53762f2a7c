package display

import (
	"io"
	"strings"

	"github.com/matzehuels/depinfo/pkg/deps"
	"github.com/matzehuels/depinfo/pkg/errors"
)

// Format selects how a report is rendered.
type Format int

const (
	Simple Format = iota
	Markdown
)

// String returns the name accepted by [ParseFormat].
func (f Format) String() string {
	switch f {
	case Simple:
		return "simple"
	case Markdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ParseFormat converts a case-insensitive format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "text", "plain":
		return Simple, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidFormat, "unknown display format %q", s)
	}
}

// Render writes r to w in format f, listing requirements up to maxDepth.
func Render(w io.Writer, r *deps.Report, f Format, maxDepth int) error {
	var out string
	switch f {
	case Simple:
		out = renderSimple(r, maxDepth)
	case Markdown:
		out = renderMarkdown(r, maxDepth)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown display format %d", int(f))
	}
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s report", f)
	}
	return nil
}
