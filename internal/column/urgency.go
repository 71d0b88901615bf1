package column

import (
	"github.com/oakwood-commons/tasklist/internal/formatter"
	"github.com/oakwood-commons/tasklist/internal/i18n"
)

// The real style prints the score with three significant digits in a field
// of at least four cells.
const (
	urgencyWidth     = 4
	urgencyPrecision = 3
)

// Urgency shows a task's urgency score as a real number or a truncated integer.
type Urgency struct {
	Descriptor
}

// NewUrgency builds the urgency column with its label taken from cat.
func NewUrgency(cat *i18n.Catalog) *Urgency {
	return &Urgency{Descriptor: Descriptor{
		catalog:      cat,
		name:         "urgency",
		typ:          "number",
		label:        cat.Get(i18n.LabelUrgency),
		style:        StyleReal,
		defaultStyle: StyleReal,
		styles:       []string{StyleReal, StyleInteger},
		examples:     []string{"4.6", "4"},
	}}
}

func (c *Urgency) format(rec Record) (string, error) {
	switch c.resolved() {
	case StyleReal:
		return formatter.FormatFixed(rec.Urgency(), urgencyWidth, urgencyPrecision), nil
	case StyleInteger:
		return formatter.FormatInteger(formatter.Truncate(rec.Urgency())), nil
	default:
		return "", c.badFormat()
	}
}

// Measure returns the exact width of the formatted score as both bounds.
func (c *Urgency) Measure(rec Record) (int, int, error) {
	s, err := c.format(rec)
	if err != nil {
		return 0, 0, err
	}
	return len(s), len(s), nil
}

// Render right-justifies the formatted score to width and colorizes it.
// An unsupported style yields no lines and a *BadFormatError.
func (c *Urgency) Render(rec Record, width int, color Colorizer) ([]string, error) {
	s, err := c.format(rec)
	if err != nil {
		return nil, err
	}
	if color == nil {
		color = NoColor
	}
	return []string{color.Colorize(formatter.RightJustify(s, width))}, nil
}
