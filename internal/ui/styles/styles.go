// Package styles provides shared lipgloss styles for terminal output.
package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
)

// Palette used across commands.
var (
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Header  = lipgloss.NewStyle().Bold(true)
)

// Enabled reports whether styled output should be used for stdout under the
// given color mode ("auto", "always" or "never"). In auto mode styling is
// on only when stdout is a terminal and NO_COLOR is unset.
func Enabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Render applies the style when enabled is true and returns the raw text
// otherwise.
func Render(style lipgloss.Style, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}
