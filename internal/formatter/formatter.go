// Package formatter holds the text primitives of tasklist output: numeric
// formatting, justification, and a small columnar table for listings.
package formatter

import (
	"charm.land/lipgloss/v2"
)

// Listing table styles (ANSI 256 codes).
var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
