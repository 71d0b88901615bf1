package column

import (
	"errors"
	"fmt"

	"github.com/oakwood-commons/tasklist/internal/i18n"
)

var (
	// ErrBadFormat matches any *BadFormatError via errors.Is.
	ErrBadFormat = errors.New("bad column format")

	// ErrUnknownColumn matches any *UnknownColumnError via errors.Is.
	ErrUnknownColumn = errors.New("unknown column")
)

// BadFormatError reports a column configured with a style it does not support.
// Message is a localized template taking the column name and the style.
type BadFormatError struct {
	Column  string
	Style   string
	Message string
}

func (e *BadFormatError) Error() string {
	tmpl := e.Message
	if tmpl == "" {
		tmpl = i18n.Default().Get(i18n.ColumnBadFormat)
	}
	return fmt.Sprintf(tmpl, e.Column, e.Style)
}

func (e *BadFormatError) Is(target error) bool {
	return target == ErrBadFormat
}

// UnknownColumnError reports a column name missing from the registry.
type UnknownColumnError struct {
	Name    string
	Message string
}

func (e *UnknownColumnError) Error() string {
	tmpl := e.Message
	if tmpl == "" {
		tmpl = i18n.Default().Get(i18n.UnknownColumn)
	}
	return fmt.Sprintf(tmpl, e.Name)
}

func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}
