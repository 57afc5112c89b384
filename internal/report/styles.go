// Package report styling definitions.
// This file defines lipgloss styles for the parse report.

package report

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for report rendering.
type Styles struct {
	// Header is the style for section headers like "[Flag mapping list]" (bold).
	Header lipgloss.Style

	// Flag is the style for flag usage notation (cyan).
	Flag lipgloss.Style

	// Value is the style for collected values and operands (yellow).
	Value lipgloss.Style

	// Muted is the style for behavior names and markers (faint).
	Muted lipgloss.Style
}

// DefaultStyles returns the standard styles for report output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Flag:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
		Muted:  lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns styles that add no formatting.
func PlainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Flag:   lipgloss.NewStyle(),
		Value:  lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle(),
	}
}
