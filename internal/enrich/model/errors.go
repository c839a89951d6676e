package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingInput       = errors.New("missing input")
	ErrMalformedInput     = errors.New("malformed input")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// MissingFileError reports a required upload that was not provided.
type MissingFileError struct {
	Field string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing file %q", e.Field)
}

func (e *MissingFileError) Unwrap() error { return ErrMissingInput }

// MissingColumnError lists every expected header absent from a sheet.
type MissingColumnError struct {
	Sheet   string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing column(s): %s", e.Sheet, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMalformedInput }
