package column

import (
	"sort"
	"strings"

	"github.com/oakwood-commons/tasklist/internal/i18n"
)

// Constructor builds a fresh column using cat for its strings.
type Constructor func(cat *i18n.Catalog) Column

// Registry maps column names to constructors. New kinds are added with
// Register; nothing else needs to change for the driver to pick them up.
type Registry struct {
	catalog *i18n.Catalog
	ctors   map[string]Constructor
}

// NewRegistry returns a registry holding the built-in columns.
func NewRegistry(cat *i18n.Catalog) *Registry {
	if cat == nil {
		cat = i18n.Default()
	}
	r := &Registry{catalog: cat, ctors: map[string]Constructor{}}
	r.Register("urgency", func(c *i18n.Catalog) Column { return NewUrgency(c) })
	return r
}

// Register adds or replaces the constructor for name.
func (r *Registry) Register(name string, ctor Constructor) {
	r.ctors[name] = ctor
}

// Names lists registered column names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the column called name with its default style.
func (r *Registry) New(name string) (Column, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, &UnknownColumnError{Name: name, Message: r.catalog.Get(i18n.UnknownColumn)}
	}
	return ctor(r.catalog), nil
}

// Parse builds a column from "name" or "name.style" and validates the style
// so configuration mistakes surface before any record is read.
func (r *Registry) Parse(spec string) (Column, error) {
	name, style, hasStyle := strings.Cut(strings.TrimSpace(spec), ".")
	col, err := r.New(name)
	if err != nil {
		return nil, err
	}
	if hasStyle {
		col.SetStyle(style)
	}
	if err := col.Validate(); err != nil {
		return nil, err
	}
	return col, nil
}

// ParseAll parses specs in order, stopping at the first failure.
func (r *Registry) ParseAll(specs []string) ([]Column, error) {
	cols := make([]Column, 0, len(specs))
	for _, spec := range specs {
		col, err := r.Parse(spec)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
