package exsheet

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// MaxColumns is the highest addressable column (XFD).
const MaxColumns = excelize.MaxColumns

// MaxRows is the highest addressable row.
const MaxRows = excelize.TotalRows

// ColumnIndexToLetter converts a 1-based column index to its letter form:
// 1 -> "A", 26 -> "Z", 27 -> "AA".
func ColumnIndexToLetter(n int) (string, error) {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "", fmt.Errorf("%w: column %d: %w", ErrInvalidCoordinate, n, err)
	}
	return name, nil
}

// LetterToColumnIndex converts column letters to a 1-based index.
// Lower-case letters are accepted.
func LetterToColumnIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty column", ErrInvalidCoordinate)
	}
	n, err := excelize.ColumnNameToNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q: %w", ErrInvalidCoordinate, s, err)
	}
	return n, nil
}

// ParseCoordinate splits an "A1"-style coordinate into its 1-based column and
// row indices. "$" absolute markers are ignored.
func ParseCoordinate(coord string) (col, row int, err error) {
	col, row, err = excelize.CellNameToCoordinates(strings.TrimSpace(coord))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidCoordinate, coord, err)
	}
	return col, row, nil
}

// FormatCoordinate builds the "A1"-style name of (col, row).
func FormatCoordinate(col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("%w: (%d, %d): %w", ErrInvalidCoordinate, col, row, err)
	}
	return name, nil
}

// ParseRange parses "A1:D10" (or a single "B2") into an area whose corners are
// ordered top-left to bottom-right.
func ParseRange(ref string) (models.Area, error) {
	start, end, found := strings.Cut(ref, ":")
	if !found {
		end = start
	}
	c1, r1, err := ParseCoordinate(start)
	if err != nil {
		return models.Area{}, err
	}
	c2, r2, err := ParseCoordinate(end)
	if err != nil {
		return models.Area{}, err
	}
	return models.Area{R1: r1, C1: c1, R2: r2, C2: c2}.Normalize(), nil
}

// FormatRange renders an area as "A1:D10".
func FormatRange(a models.Area) (string, error) {
	start, err := FormatCoordinate(a.C1, a.R1)
	if err != nil {
		return "", err
	}
	end, err := FormatCoordinate(a.C2, a.R2)
	if err != nil {
		return "", err
	}
	return start + ":" + end, nil
}

// columnLetter is ColumnIndexToLetter for indices already known to be valid.
func columnLetter(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
