// Package ui holds the presentation helpers for the CLI.
//
// Styling is off unless the caller enables it. The CLI enables it only when
// stdout is a terminal and --no-color was not given, so piped output and
// tests always see plain text.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Default: colors disabled. Override via SetColorEnabled.
var colorEnabled = false

// Tokyo Night–inspired palette.
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BB9AF7"))
	Label = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7AA2F7"))
	Value = lipgloss.NewStyle().Foreground(lipgloss.Color("#2AC3DE"))
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#8892B0"))
	Error = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7768E"))
)

// SetColorEnabled toggles styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style renders s with st when color is enabled; otherwise s is returned
// unchanged.
func Style(s string, st lipgloss.Style) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColorMode resolves a color setting ("auto", "always", "never") for out.
// Unknown values behave like "auto".
func ColorMode(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return out != nil && IsTerminal(out)
	}
}
