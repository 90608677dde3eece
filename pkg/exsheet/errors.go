package exsheet

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate indicates a malformed cell coordinate or column letter,
// or one that lies outside the sheet.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrRowOutOfRange indicates direct access to a row beyond the grid.
var ErrRowOutOfRange = errors.New("row out of range")

// ErrColumnOutOfRange indicates direct access to a column beyond the grid.
var ErrColumnOutOfRange = errors.New("column out of range")

// ErrInvalidBounds indicates a start bound greater than the end bound.
var ErrInvalidBounds = errors.New("invalid bounds")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file has no loader.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrSheetNotFound indicates a sheet lookup by index or name failed.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrPrintAreaNotFound indicates the sheet defines no print area at the
// requested position.
var ErrPrintAreaNotFound = errors.New("print area not found")

// LoadError represents an error while decoding a workbook.
type LoadError struct {
	Path      string
	SheetName string // empty when the failure is not tied to one sheet
	Err       error
}

func (e *LoadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s (sheet %q): %v", e.Path, e.SheetName, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func rowRangeError(n, highest int) error {
	return fmt.Errorf("%w: row %d not in [1, %d]", ErrRowOutOfRange, n, highest)
}

func columnRangeError(letter string, highest int) error {
	return fmt.Errorf("%w: column %s beyond highest column %d", ErrColumnOutOfRange, letter, highest)
}

func boundsError(axis string, start, end any) error {
	return fmt.Errorf("%w: %s start %v is after end %v", ErrInvalidBounds, axis, start, end)
}
