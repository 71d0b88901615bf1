// Package column defines the report column contract and its variants.
//
// A report driver first asks every column to Measure each record, settles on
// one width per column, then asks each column to Render every record at that
// width. Columns carry configuration only, so one instance may be measured and
// rendered from several goroutines as long as its style is not changed while
// a report runs.
package column

import (
	"slices"

	"github.com/oakwood-commons/tasklist/internal/i18n"
)

// Style names shared by columns.
const (
	StyleDefault = "default"
	StyleReal    = "real"
	StyleInteger = "integer"
)

// Record is the read-only view of a task that columns draw values from.
type Record interface {
	Urgency() float64
}

// Colorizer wraps rendered text for terminal display.
type Colorizer interface {
	Colorize(s string) string
}

type plain struct{}

func (plain) Colorize(s string) string { return s }

// NoColor leaves text untouched.
var NoColor Colorizer = plain{}

// Column turns one attribute of a record into fixed width text.
type Column interface {
	Name() string
	Type() string
	Label() string
	Style() string
	SetStyle(style string)
	Styles() []string
	Examples() []string

	// Validate fails with a *BadFormatError when the style is not supported.
	Validate() error

	// Measure reports the width range the value of rec needs under the current style.
	Measure(rec Record) (minimum, maximum int, err error)

	// Render returns the lines for rec justified to width and passed through color.
	Render(rec Record, width int, color Colorizer) ([]string, error)
}

// Descriptor carries the identity and style configuration every column shares.
// Variants embed it and supply Measure and Render.
type Descriptor struct {
	catalog      *i18n.Catalog
	name         string
	typ          string
	label        string
	style        string
	defaultStyle string
	styles       []string
	examples     []string
}

func (d *Descriptor) Name() string  { return d.name }
func (d *Descriptor) Type() string  { return d.typ }
func (d *Descriptor) Label() string { return d.label }
func (d *Descriptor) Style() string { return d.style }

// SetStyle records the requested style. It is checked by Validate, Measure and Render.
func (d *Descriptor) SetStyle(style string) { d.style = style }

// Styles lists the supported styles in display order.
func (d *Descriptor) Styles() []string { return slices.Clone(d.styles) }

// Examples pairs with Styles and shows what each style looks like.
func (d *Descriptor) Examples() []string { return slices.Clone(d.examples) }

// DefaultStyle is the style a column starts with and the target of "default".
func (d *Descriptor) DefaultStyle() string { return d.defaultStyle }

// Supports reports whether style is usable, counting "default" as an alias.
func (d *Descriptor) Supports(style string) bool {
	return style == StyleDefault || slices.Contains(d.styles, style)
}

// Validate fails when the current style is unsupported.
func (d *Descriptor) Validate() error {
	if !d.Supports(d.style) {
		return d.badFormat()
	}
	return nil
}

// resolved maps the "default" alias onto the concrete default style.
func (d *Descriptor) resolved() string {
	if d.style == StyleDefault {
		return d.defaultStyle
	}
	return d.style
}

func (d *Descriptor) badFormat() error {
	return &BadFormatError{
		Column:  d.name,
		Style:   d.style,
		Message: d.catalog.Get(i18n.ColumnBadFormat),
	}
}
