package formatter

import (
	"strings"
)

// ColumnHint provides display hints for one column of a columnar table.
type ColumnHint struct {
	// Align is "right" or "left" (default).
	Align string

	// Key marks the column as the row key, styled like a key when colored.
	Key bool
}

// ColumnarOptions configures columnar table rendering.
type ColumnarOptions struct {
	// NoColor disables color output.
	NoColor bool

	// Separator sits between columns. Defaults to two spaces.
	Separator string

	// ColumnHints is keyed by header text.
	ColumnHints map[string]ColumnHint
}

// RenderColumnarTable renders rows under headers. Every column is as wide as
// its widest cell or header; nothing is truncated.
func RenderColumnarTable(headers []string, rows [][]string, opts ColumnarOptions) string {
	if len(headers) == 0 {
		return ""
	}
	sep := opts.Separator
	if sep == "" {
		sep = "  "
	}

	widths := columnWidths(headers, rows)
	hints := make([]ColumnHint, len(headers))
	for i, h := range headers {
		hints[i] = opts.ColumnHints[h]
	}

	var b strings.Builder

	parts := make([]string, len(headers))
	for i, h := range headers {
		parts[i] = alignCell(h, widths[i], hints[i].Align)
		if !opts.NoColor {
			parts[i] = headerStyle.Render(parts[i])
		}
	}
	b.WriteString(strings.TrimRight(strings.Join(parts, sep), " ") + "\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += (len(widths) - 1) * DisplayWidth(sep)
	rule := strings.Repeat("─", total)
	if !opts.NoColor {
		rule = separatorStyle.Render(rule)
	}
	b.WriteString(rule + "\n")

	for _, row := range rows {
		for i := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			parts[i] = alignCell(val, widths[i], hints[i].Align)
			if !opts.NoColor && hints[i].Key && val != "" {
				parts[i] = keyStyle.Render(parts[i])
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " ") + "\n")
	}
	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = DisplayWidth(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], DisplayWidth(val))
			}
		}
	}
	return widths
}

func alignCell(s string, width int, align string) string {
	if align == "right" {
		return RightJustify(s, width)
	}
	return LeftJustify(s, width)
}
