package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tasklist/internal/i18n"
)

func TestRegistryParse(t *testing.T) {
	reg := NewRegistry(i18n.Default())

	tests := []struct {
		name      string
		spec      string
		wantStyle string
		wantErr   error
	}{
		{name: "bare name", spec: "urgency", wantStyle: StyleReal},
		{name: "explicit real", spec: "urgency.real", wantStyle: StyleReal},
		{name: "integer", spec: "urgency.integer", wantStyle: StyleInteger},
		{name: "default alias", spec: "urgency.default", wantStyle: StyleDefault},
		{name: "surrounding space", spec: "  urgency.integer ", wantStyle: StyleInteger},
		{name: "bad style", spec: "urgency.bogus", wantErr: ErrBadFormat},
		{name: "empty style", spec: "urgency.", wantErr: ErrBadFormat},
		{name: "unknown column", spec: "priority", wantErr: ErrUnknownColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := reg.Parse(tt.spec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, col)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "urgency", col.Name())
			assert.Equal(t, tt.wantStyle, col.Style())
		})
	}
}

func TestRegistryErrorMessages(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Parse("urgency.bogus")
	assert.EqualError(t, err, "Unrecognized column format 'urgency.bogus'")

	_, err = reg.Parse("nope")
	assert.EqualError(t, err, "Unrecognized column name 'nope'")
}

func TestRegistryParseAll(t *testing.T) {
	reg := NewRegistry(i18n.Default())

	cols, err := reg.ParseAll([]string{"urgency", "urgency.integer"})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, StyleReal, cols[0].Style())
	assert.Equal(t, StyleInteger, cols[1].Style())

	cols[1].SetStyle(StyleReal)
	assert.Equal(t, StyleReal, cols[1].Style())
	assert.Equal(t, StyleReal, cols[0].Style(), "columns are independent instances")

	_, err = reg.ParseAll([]string{"urgency", "urgency.bogus"})
	assert.ErrorIs(t, err, ErrBadFormat)
}

type fixed struct {
	Descriptor
}

func (f *fixed) Measure(Record) (int, int, error) { return 1, 1, nil }

func (f *fixed) Render(_ Record, width int, color Colorizer) ([]string, error) {
	return []string{color.Colorize("x")}, nil
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry(i18n.Default())
	reg.Register("marker", func(cat *i18n.Catalog) Column {
		return &fixed{Descriptor{catalog: cat, name: "marker", typ: "string", style: "plain", defaultStyle: "plain", styles: []string{"plain"}}}
	})

	assert.Equal(t, []string{"marker", "urgency"}, reg.Names())

	col, err := reg.Parse("marker")
	require.NoError(t, err)
	assert.Equal(t, "string", col.Type())

	_, err = reg.Parse("marker.fancy")
	assert.EqualError(t, err, "Unrecognized column format 'marker.fancy'")
}
