// Package color turns configured colour specs into colorizers for report cells.
package color

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color applies a lipgloss style to text. The zero value leaves text untouched.
type Color struct {
	style lipgloss.Style
	set   bool
}

// None passes text through unchanged.
var None = Color{}

// Colorize renders s with the colour's style.
func (c Color) Colorize(s string) string {
	if !c.set {
		return s
	}
	return c.style.Render(s)
}

// IsZero reports whether the colour has no effect.
func (c Color) IsZero() bool {
	return !c.set
}

// Parse reads a spec such as "12", "#ff8800", "bold 9" or "underline".
// Colours are ANSI 256 indexes or hex RGB; "bold" and "underline" may prefix them.
// An empty spec yields None.
func Parse(spec string) (Color, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return None, nil
	}

	style := lipgloss.NewStyle()
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "bold":
			style = style.Bold(true)
		case "underline":
			style = style.Underline(true)
		default:
			if !validColor(f) {
				return None, fmt.Errorf("invalid color %q in %q", f, spec)
			}
			style = style.Foreground(lipgloss.Color(f))
		}
	}
	return Color{style: style, set: true}, nil
}

func validColor(s string) bool {
	if hexPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Enabled decides whether output written to out should carry colour.
// It is off when noColor is set, when NO_COLOR is present in the
// environment, or when out is not a terminal.
func Enabled(noColor bool, out *os.File) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if out == nil {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}
