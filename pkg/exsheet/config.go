package exsheet

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// HeadingMode selects which row, if any, names the columns of a sheet.
type HeadingMode int

const (
	// HeadingDisabled means the sheet has no heading row.
	HeadingDisabled HeadingMode = iota
	// HeadingFirstRow uses row 1 as the heading row.
	HeadingFirstRow
	// HeadingExplicit uses HeadingRow.Row as the heading row.
	HeadingExplicit
)

// String returns the string representation of the heading mode.
func (m HeadingMode) String() string {
	switch m {
	case HeadingDisabled:
		return "disabled"
	case HeadingFirstRow:
		return "first-row"
	case HeadingExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// HeadingRow is the heading selector of a sheet.
type HeadingRow struct {
	Mode HeadingMode `json:"mode"`
	// Row is the heading row number for HeadingExplicit.
	Row int `json:"row,omitempty"`
}

// NoHeading disables the heading row.
func NoHeading() HeadingRow {
	return HeadingRow{Mode: HeadingDisabled}
}

// FirstRowHeading selects row 1 as heading row.
func FirstRowHeading() HeadingRow {
	return HeadingRow{Mode: HeadingFirstRow}
}

// RowHeading selects row n as heading row; n < 1 disables the heading.
func RowHeading(n int) HeadingRow {
	if n < 1 {
		return NoHeading()
	}
	return HeadingRow{Mode: HeadingExplicit, Row: n}
}

// Number returns the heading row number, or 0 when disabled.
func (h HeadingRow) Number() int {
	switch h.Mode {
	case HeadingFirstRow:
		return 1
	case HeadingExplicit:
		if h.Row > 0 {
			return h.Row
		}
	}
	return 0
}

// Active reports whether a heading row is selected.
func (h HeadingRow) Active() bool {
	return h.Number() > 0
}

func (h HeadingRow) String() string {
	if h.Mode == HeadingExplicit {
		return fmt.Sprintf("explicit(%d)", h.Row)
	}
	return h.Mode.String()
}

// Config is the iteration configuration of a sheet: row bounds and the
// heading selector. Nil bounds are unset.
type Config struct {
	StartRow *int       `json:"start_row,omitempty"`
	EndRow   *int       `json:"end_row,omitempty"`
	Heading  HeadingRow `json:"heading"`
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	var out Config
	if err := deepcopy.Copy(&out, &c); err != nil {
		// Config to Config always has matching types.
		panic(err)
	}
	return out
}

// RowRange returns the effective row window for a grid whose highest row is
// highestRow. An empty window has first > last.
func (c Config) RowRange(highestRow int) (first, last int, err error) {
	return c.rowWindow(0, 0, highestRow)
}

// rowWindow resolves the row window of one iteration. start and end are the
// arguments of that iteration, 0 when not given. A given start wins over the
// heading skip; otherwise the window never includes the heading row or any
// row above it.
func (c Config) rowWindow(start, end, highestRow int) (first, last int, err error) {
	explicitStart := start > 0
	startSet := explicitStart || c.StartRow != nil
	endSet := end > 0 || c.EndRow != nil

	if !explicitStart {
		start = 1
		if c.StartRow != nil {
			start = *c.StartRow
		}
	}
	if end <= 0 {
		end = highestRow
		if c.EndRow != nil {
			end = *c.EndRow
		}
	}
	if startSet && endSet && start > end {
		return 0, 0, boundsError("row", start, end)
	}

	if h := c.Heading.Number(); !explicitStart && h > 0 && start <= h {
		start = h + 1
	}
	return max(start, 1), min(end, highestRow), nil
}

// columnWindow resolves a column window from optional letters ("" = not
// given) against the highest column.
func columnWindow(start, end string, highestCol int) (first, last int, err error) {
	first, last = 1, highestCol
	if start != "" {
		if first, err = LetterToColumnIndex(start); err != nil {
			return 0, 0, err
		}
	}
	if end != "" {
		if last, err = LetterToColumnIndex(end); err != nil {
			return 0, 0, err
		}
	}
	if start != "" && end != "" && first > last {
		return 0, 0, boundsError("column", start, end)
	}
	return first, min(last, highestCol), nil
}

func intPtr(n int) *int {
	return &n
}
