package formatter

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// RightJustify pads s on the left with spaces until it fills width cells.
// Text already at or beyond width is returned unchanged.
func RightJustify(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// LeftJustify pads s on the right with spaces until it fills width cells.
func LeftJustify(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// DisplayWidth reports the terminal cell width of s, ignoring ANSI escapes.
func DisplayWidth(s string) int {
	return lipgloss.Width(s)
}
