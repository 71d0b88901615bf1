// Package report lays out report columns: every record is measured before
// any is rendered, so each column is rendered at one shared width.
package report

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/oakwood-commons/tasklist/internal/column"
	"github.com/oakwood-commons/tasklist/internal/formatter"
	"github.com/oakwood-commons/tasklist/pkg/logger"
)

// DefaultSeparator sits between adjacent columns.
const DefaultSeparator = " "

// Report renders a set of columns over a list of records.
type Report struct {
	Columns []column.Column

	// Colors is keyed by column name. Missing entries render uncolored.
	Colors map[string]column.Colorizer

	// HeaderColor styles the label row.
	HeaderColor column.Colorizer

	// Header adds a row of column labels above the records.
	Header bool

	// Separator defaults to DefaultSeparator when empty.
	Separator string
}

// Measure returns the width of every column: the largest maximum reported
// for any record, widened to the label when a header is shown. The first
// measure failure aborts the whole report.
func (r *Report) Measure(ctx context.Context, recs []column.Record) ([]int, error) {
	lgr := logger.FromContext(ctx)
	widths := make([]int, len(r.Columns))

	g, ctx := errgroup.WithContext(ctx)
	for i, col := range r.Columns {
		g.Go(func() error {
			width := 0
			if r.Header {
				width = formatter.DisplayWidth(col.Label())
			}
			for _, rec := range recs {
				if err := ctx.Err(); err != nil {
					return err
				}
				_, maximum, err := col.Measure(rec)
				if err != nil {
					return err
				}
				width = max(width, maximum)
			}
			widths[i] = width
			lgr.V(1).Info("measured column", "column", col.Name(), "style", col.Style(), "width", width, "records", len(recs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return widths, nil
}

// Render measures then renders recs, returning one string per output line.
// Nothing is returned when any column fails.
func (r *Report) Render(ctx context.Context, recs []column.Record) ([]string, error) {
	widths, err := r.Measure(ctx, recs)
	if err != nil {
		return nil, err
	}

	sep := r.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	lines := make([]string, 0, len(recs)+1)
	if r.Header && len(r.Columns) > 0 {
		lines = append(lines, r.renderHeader(widths, sep))
	}

	for _, rec := range recs {
		cells := make([][]string, len(r.Columns))
		height := 0
		for i, col := range r.Columns {
			cell, err := col.Render(rec, widths[i], r.colorFor(col))
			if err != nil {
				return nil, err
			}
			cells[i] = cell
			height = max(height, len(cell))
		}
		lines = append(lines, joinCells(cells, widths, height, sep)...)
	}
	return lines, nil
}

// renderHeader right-aligns labels of numeric columns over their values and
// left-aligns the rest.
func (r *Report) renderHeader(widths []int, sep string) string {
	color := r.HeaderColor
	if color == nil {
		color = column.NoColor
	}
	parts := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		label := col.Label()
		if col.Type() == "number" {
			label = formatter.RightJustify(label, widths[i])
		} else {
			label = formatter.LeftJustify(label, widths[i])
		}
		parts[i] = color.Colorize(label)
	}
	return strings.Join(parts, sep)
}

func (r *Report) colorFor(col column.Column) column.Colorizer {
	if c, ok := r.Colors[col.Name()]; ok && c != nil {
		return c
	}
	return column.NoColor
}

// joinCells lays cells side by side. A cell with fewer lines than the row
// height is filled with blanks of its column width.
func joinCells(cells [][]string, widths []int, height int, sep string) []string {
	out := make([]string, height)
	parts := make([]string, len(cells))
	for line := 0; line < height; line++ {
		for i, cell := range cells {
			if line < len(cell) {
				parts[i] = cell[line]
			} else {
				parts[i] = strings.Repeat(" ", widths[i])
			}
		}
		out[line] = strings.Join(parts, sep)
	}
	return out
}

// Records adapts a typed slice to the column record interface.
func Records[T column.Record](items []T) []column.Record {
	recs := make([]column.Record, len(items))
	for i, item := range items {
		recs[i] = item
	}
	return recs
}
