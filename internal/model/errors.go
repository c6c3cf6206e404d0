package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput means an aggregation had no qualifying rows
	ErrEmptyInput = errors.New("no data to aggregate")
	// ErrUnknownCity means the city key has no dataset
	ErrUnknownCity = errors.New("unknown city")
	// ErrInvalidFilter means a month or day is outside the vocabulary
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrMissingColumn means a required dataset column is absent
	ErrMissingColumn = errors.New("missing required column")
)

// DataFormatError reports a field that failed to parse during load
type DataFormatError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Err    error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("row %d: column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }
