package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - debug
	colorGreen  = lipgloss.Color("35")  // Green - info
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// StyleDim for secondary/muted text.
var StyleDim = lipgloss.NewStyle().Foreground(colorDim)

// logStyles returns the default log styles with full level names.
func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	level := func(name string, color lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().SetString(name).Bold(true).Foreground(color)
	}
	styles.Levels[log.DebugLevel] = level("DEBUG", colorCyan)
	styles.Levels[log.InfoLevel] = level("INFO", colorGreen)
	styles.Levels[log.WarnLevel] = level("WARNING", colorYellow)
	styles.Levels[log.ErrorLevel] = level("ERROR", colorRed)
	styles.Levels[log.FatalLevel] = level("CRITICAL", colorRed).Reverse(true)
	return styles
}

// printUsageHint prints the command's usage line and where to find help.
func printUsageHint(w io.Writer, cmd *cobra.Command) {
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("Usage: %s\nRun '%s --help' for details.", cmd.UseLine(), cmd.Name())))
}
