package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tasklist/internal/column"
	"github.com/oakwood-commons/tasklist/internal/i18n"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"urgency"}, cfg.Report.Columns)
	assert.True(t, cfg.Report.Header)
	assert.Equal(t, " ", cfg.Report.Separator)
	assert.Equal(t, "underline", cfg.Color[HeaderColorKey])
}

func TestParse(t *testing.T) {
	t.Run("overrides merge over defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
report:
  columns: [urgency.integer, urgency]
  header: false
color:
  urgency: "12"
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"urgency.integer", "urgency"}, cfg.Report.Columns)
		assert.False(t, cfg.Report.Header)
		assert.Equal(t, " ", cfg.Report.Separator)
		assert.Equal(t, "12", cfg.Color["urgency"])
		assert.Equal(t, "underline", cfg.Color[HeaderColorKey])
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("reports:\n  columns: [urgency]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("messages: de.yaml\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "de.yaml"), cfg.Messages)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		assert.Equal(t, "mine.yaml", ResolvePath("mine.yaml"))
	})

	t.Run("xdg file", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		require.NoError(t, os.MkdirAll(filepath.Join(xdg, "tasklist"), 0o700))
		want := filepath.Join(xdg, "tasklist", "config.yaml")
		require.NoError(t, os.WriteFile(want, []byte("{}\n"), 0o600))

		assert.Equal(t, want, ResolvePath(""))
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		assert.Empty(t, ResolvePath(""))
	})
}

func TestColumns(t *testing.T) {
	reg := column.NewRegistry(i18n.Default())

	cfg := Default()
	cfg.Report.Columns = []string{"urgency.integer"}
	cols, err := cfg.Columns(reg)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "integer", cols[0].Style())

	cfg.Report.Columns = []string{"urgency.bogus"}
	_, err = cfg.Columns(reg)
	assert.ErrorIs(t, err, column.ErrBadFormat)

	cfg.Report.Columns = nil
	_, err = cfg.Columns(reg)
	assert.Error(t, err)
}

func TestColors(t *testing.T) {
	cfg := Default()
	cfg.Color["urgency"] = "bold #ff8800"

	cols, header, err := cfg.Colors()
	require.NoError(t, err)
	assert.Contains(t, cols, "urgency")
	assert.NotContains(t, cols, HeaderColorKey)
	assert.NotEqual(t, column.NoColor, header)

	cfg.Color["urgency"] = "chartreuse"
	_, _, err = cfg.Colors()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color.urgency")
}
