package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI returns s without its terminal escape sequences.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// padRight pads s with spaces to width terminal cells, ignoring escape sequences.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}

	return s + strings.Repeat(" ", width-visible)
}
