package color

import (
	"os"
	"path/filepath"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
		zero    bool
	}{
		{name: "empty", spec: "", zero: true},
		{name: "blank", spec: "   ", zero: true},
		{name: "ansi index", spec: "12"},
		{name: "hex", spec: "#ff8800"},
		{name: "short hex", spec: "#f80"},
		{name: "bold with color", spec: "bold 9"},
		{name: "underline only", spec: "underline"},
		{name: "index out of range", spec: "256", wantErr: true},
		{name: "negative index", spec: "-1", wantErr: true},
		{name: "named color", spec: "red", wantErr: true},
		{name: "bad hex", spec: "#ff88zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.zero, c.IsZero())
		})
	}
}

func TestColorize(t *testing.T) {
	t.Run("none passes through", func(t *testing.T) {
		assert.Equal(t, " 4.6", None.Colorize(" 4.6"))
	})

	t.Run("styled keeps text and width", func(t *testing.T) {
		c, err := Parse("bold 12")
		require.NoError(t, err)
		out := c.Colorize(" 4.6")
		assert.Contains(t, out, "4.6")
		assert.Equal(t, 4, lipgloss.Width(out))
	})
}

func TestEnabled(t *testing.T) {
	t.Run("flag disables", func(t *testing.T) {
		assert.False(t, Enabled(true, os.Stdout))
	})

	t.Run("nil output", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		assert.False(t, Enabled(false, nil))
	})

	t.Run("NO_COLOR disables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, Enabled(false, os.Stdout))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer f.Close()
		assert.False(t, Enabled(false, f))
	})
}
