package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderColumnarTable(t *testing.T) {
	t.Run("basic render", func(t *testing.T) {
		result := RenderColumnarTable(
			[]string{"Columns", "Type", "Example"},
			[][]string{
				{"urgency", "number", "4.6"},
				{"", "", "4"},
			},
			ColumnarOptions{NoColor: true},
		)

		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Columns  Type    Example", lines[0])
		assert.Equal(t, strings.Repeat("─", 24), lines[1])
		assert.Equal(t, "urgency  number  4.6", lines[2])
		assert.Equal(t, "                 4", lines[3])
	})

	t.Run("right alignment hint", func(t *testing.T) {
		result := RenderColumnarTable(
			[]string{"name", "score"},
			[][]string{{"a", "4.6"}, {"b", "12.3"}},
			ColumnarOptions{NoColor: true, Separator: " ", ColumnHints: map[string]ColumnHint{"score": {Align: "right"}}},
		)

		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "name score", lines[0])
		assert.Equal(t, "a      4.6", lines[2])
		assert.Equal(t, "b     12.3", lines[3])
	})

	t.Run("short rows", func(t *testing.T) {
		result := RenderColumnarTable([]string{"a", "b"}, [][]string{{"x"}}, ColumnarOptions{NoColor: true})
		assert.Contains(t, result, "x\n")
	})

	t.Run("no headers", func(t *testing.T) {
		assert.Empty(t, RenderColumnarTable(nil, [][]string{{"x"}}, ColumnarOptions{}))
	})

	t.Run("colored output keeps widths", func(t *testing.T) {
		result := RenderColumnarTable(
			[]string{"name", "type"},
			[][]string{{"urgency", "number"}},
			ColumnarOptions{ColumnHints: map[string]ColumnHint{"name": {Key: true}}},
		)
		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, len("urgency  number"), DisplayWidth(lines[2]))
	})
}
