// Package config loads the tasklist YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/tasklist/internal/color"
	"github.com/oakwood-commons/tasklist/internal/column"
	"github.com/oakwood-commons/tasklist/pkg/settings"
)

// HeaderColorKey styles the label row in the color section.
const HeaderColorKey = "header"

// Config is the on-disk configuration.
//
//	report:
//	  columns: [urgency, urgency.integer]
//	  header: true
//	  separator: " "
//	color:
//	  header: underline
//	  urgency: "12"
//	messages: messages.de.yaml
type Config struct {
	Report ReportConfig      `yaml:"report"`
	Color  map[string]string `yaml:"color,omitempty"`

	// Messages points at a message catalog. Relative paths resolve against
	// the directory of the config file.
	Messages string `yaml:"messages,omitempty"`
}

// ReportConfig holds the report layout.
type ReportConfig struct {
	Columns   []string `yaml:"columns"`
	Header    bool     `yaml:"header"`
	Separator string   `yaml:"separator,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Report: ReportConfig{
			Columns:   []string{"urgency"},
			Header:    true,
			Separator: " ",
		},
		Color: map[string]string{
			HeaderColorKey: "underline",
		},
	}
}

// Parse decodes data over the defaults. Keys absent from data keep their
// default values; unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load reads the config at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Messages != "" && !filepath.IsAbs(cfg.Messages) {
		cfg.Messages = filepath.Join(filepath.Dir(path), cfg.Messages)
	}
	return cfg, nil
}

// ResolvePath returns explicit when set, otherwise the first existing file of
// $XDG_CONFIG_HOME/tasklist/config.yaml or ~/.config/tasklist/config.yaml.
// It returns "" when there is none.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate == "" {
		return ""
	}
	if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
		return candidate
	}
	return ""
}

// Columns builds and validates the configured columns, so a bad style is
// reported before any task is read.
func (c Config) Columns(reg *column.Registry) ([]column.Column, error) {
	if len(c.Report.Columns) == 0 {
		return nil, fmt.Errorf("no report columns configured")
	}
	return reg.ParseAll(c.Report.Columns)
}

// Colors parses the color section. The header entry is returned separately;
// the rest are keyed by column name.
func (c Config) Colors() (map[string]column.Colorizer, column.Colorizer, error) {
	names := make([]string, 0, len(c.Color))
	for name := range c.Color {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make(map[string]column.Colorizer, len(names))
	var header column.Colorizer = column.NoColor
	for _, name := range names {
		parsed, err := color.Parse(c.Color[name])
		if err != nil {
			return nil, nil, fmt.Errorf("color.%s: %w", name, err)
		}
		if name == HeaderColorKey {
			header = parsed
			continue
		}
		cols[name] = parsed
	}
	return cols, header, nil
}
