// Package i18n holds the user facing strings of tasklist, keyed by a stable
// message id, with optional per-locale overrides loaded from YAML.
package i18n

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// MessageID identifies a translatable string.
type MessageID string

const (
	LabelUrgency    MessageID = "column.label.urgency"
	ColumnBadFormat MessageID = "column.bad_format"
	UnknownColumn   MessageID = "column.unknown"
	HeaderColumns   MessageID = "columns.header.name"
	HeaderType      MessageID = "columns.header.type"
	HeaderStyles    MessageID = "columns.header.styles"
	HeaderExample   MessageID = "columns.header.example"
	DefaultNote     MessageID = "columns.note.default"
)

// english is the fallback for every id. Templates take the column name
// followed by the style.
var english = map[MessageID]string{
	LabelUrgency:    "Urgency",
	ColumnBadFormat: "Unrecognized column format '%s.%s'",
	UnknownColumn:   "Unrecognized column name '%s'",
	HeaderColumns:   "Columns",
	HeaderType:      "Type",
	HeaderStyles:    "Supported Formats",
	HeaderExample:   "Example",
	DefaultNote:     "* Means default format, and therefore optional. For example, '%s' and '%s.%s' are equivalent.",
}

// Catalog resolves message ids for one locale.
type Catalog struct {
	locale   language.Tag
	messages map[MessageID]string
}

// Default returns the built-in English catalog.
func Default() *Catalog {
	msgs := make(map[MessageID]string, len(english))
	for id, text := range english {
		msgs[id] = text
	}
	return &Catalog{locale: language.English, messages: msgs}
}

// Locale reports the language the catalog was loaded for.
func (c *Catalog) Locale() language.Tag {
	if c == nil {
		return language.English
	}
	return c.locale
}

// Get returns the text for id. Missing entries fall back to English and then
// to the id itself so a lookup never yields an empty string.
func (c *Catalog) Get(id MessageID) string {
	if c != nil {
		if text, ok := c.messages[id]; ok && text != "" {
			return text
		}
	}
	if text, ok := english[id]; ok {
		return text
	}
	return string(id)
}

// Sprintf expands the template for id with args.
func (c *Catalog) Sprintf(id MessageID, args ...any) string {
	return fmt.Sprintf(c.Get(id), args...)
}

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Load reads a YAML catalog of the form
//
//	locale: de
//	messages:
//	  column.label.urgency: Dringlichkeit
//
// over the English defaults. Unknown message ids are rejected.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("decode message catalog: %w", err)
	}

	cat := Default()
	if f.Locale != "" {
		tag, err := language.Parse(f.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", f.Locale, err)
		}
		cat.locale = tag
	}

	var unknown []string
	for id, text := range f.Messages {
		if _, ok := english[MessageID(id)]; !ok {
			unknown = append(unknown, id)
			continue
		}
		cat.messages[MessageID(id)] = text
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown message ids: %s", strings.Join(unknown, ", "))
	}
	return cat, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
