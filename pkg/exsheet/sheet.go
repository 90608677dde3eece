package exsheet

import (
	"fmt"
	"iter"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

// Sheet exposes one worksheet as iterable rows and columns.
//
// The grid is shared and read-only; everything else (row bounds, heading
// selector, heading cache) belongs to this Sheet value, so a Clone can be
// configured independently. A Sheet is not safe for concurrent use.
type Sheet struct {
	title      string
	index      int
	hidden     bool
	grid       *models.Grid
	printAreas []models.Area

	config   Config
	headings headingCache
}

// NewSheet wraps decoded sheet data. The grid is not copied.
func NewSheet(data models.SheetData) *Sheet {
	grid := data.Grid
	if grid == nil {
		grid = models.NewGridBuilder().Build()
	}
	return &Sheet{
		title:      data.Title,
		index:      data.Index,
		hidden:     data.Hidden,
		grid:       grid,
		printAreas: data.PrintAreas,
	}
}

// Title returns the sheet name.
func (s *Sheet) Title() string { return s.title }

// Index returns the 0-based position of the sheet in its workbook.
func (s *Sheet) Index() int { return s.index }

// Hidden reports whether the sheet is hidden in its workbook.
func (s *Sheet) Hidden() bool { return s.hidden }

// Grid returns the underlying read-only grid.
func (s *Sheet) Grid() *models.Grid { return s.grid }

// HighestRow returns the highest populated row.
func (s *Sheet) HighestRow() int { return s.grid.HighestRow() }

// HighestColumn returns the highest populated column in letter form, or ""
// for an empty sheet.
func (s *Sheet) HighestColumn() string {
	if s.grid.HighestColumn() == 0 {
		return ""
	}
	return columnLetter(s.grid.HighestColumn())
}

// Clone returns a copy with its own configuration and heading cache over the
// same grid.
func (s *Sheet) Clone() *Sheet {
	return &Sheet{
		title:      s.title,
		index:      s.index,
		hidden:     s.hidden,
		grid:       s.grid,
		printAreas: s.printAreas,
		config:     s.config.Clone(),
	}
}

// Config returns a copy of the current configuration.
func (s *Sheet) Config() Config {
	return s.config.Clone()
}

// SetConfig replaces the configuration. The heading cache is dropped only
// when the heading selector changes.
func (s *Sheet) SetConfig(cfg Config) {
	if cfg.Heading != s.config.Heading {
		s.headings.invalidate()
	}
	s.config = cfg.Clone()
}

// SetStartRow sets the first row of iteration. It is checked against the end
// row when iterating, not here.
func (s *Sheet) SetStartRow(n int) {
	s.config.StartRow = intPtr(n)
}

// SetEndRow sets the last row of iteration.
func (s *Sheet) SetEndRow(n int) {
	s.config.EndRow = intPtr(n)
}

// ResetBounds clears the start and end rows.
func (s *Sheet) ResetBounds() {
	s.config.StartRow = nil
	s.config.EndRow = nil
}

// UseFirstRowAsHeading makes row 1 the heading row.
func (s *Sheet) UseFirstRowAsHeading() {
	s.setHeading(FirstRowHeading())
}

// UseRowAsHeading makes row n the heading row. n < 1 disables the heading.
func (s *Sheet) UseRowAsHeading(n int) {
	s.setHeading(RowHeading(n))
}

// DisableHeading turns the heading row off.
func (s *Sheet) DisableHeading() {
	s.setHeading(NoHeading())
}

func (s *Sheet) setHeading(h HeadingRow) {
	s.config.Heading = h
	s.headings.invalidate()
}

// HeadingRow returns the current heading selector.
func (s *Sheet) HeadingRow() HeadingRow {
	return s.config.Heading
}

// Headings returns the heading value of every column, keyed by column letter.
// It is empty when no heading row is active. The result is computed once per
// heading selector and the same instance is returned until the selector
// changes; callers must not modify it.
func (s *Sheet) Headings() *Headings {
	return s.headings.get(s.config.Heading, s.computeHeadings)
}

func (s *Sheet) computeHeadings() *Headings {
	h := s.config.Heading.Number()
	if h == 0 {
		return newHeadings(0)
	}
	cols := s.grid.HighestColumn()
	out := newHeadings(cols)
	for col := 1; col <= cols; col++ {
		v, _ := s.grid.Value(h, col)
		out.add(columnLetter(col), v)
	}
	return out
}

// Rows returns the rows of the effective row window in ascending order.
// When a heading row is active the window starts after it.
func (s *Sheet) Rows() (iter.Seq[Row], error) {
	return s.RowRange(0, 0)
}

// RowRange returns the rows in [start, end], clamped to the grid. A zero start
// or end falls back to the configured bound. An explicit start is honoured
// as given, even when it selects the heading row.
func (s *Sheet) RowRange(start, end int) (iter.Seq[Row], error) {
	first, last, err := s.rowWindow(start, end)
	if err != nil {
		return nil, err
	}
	return func(yield func(Row) bool) {
		for n := first; n <= last; n++ {
			if !yield(Row{sheet: s, number: n}) {
				return
			}
		}
	}, nil
}

func (s *Sheet) rowWindow(start, end int) (first, last int, err error) {
	return s.config.rowWindow(start, end, s.grid.HighestRow())
}

// Columns returns the columns from A to the highest column.
func (s *Sheet) Columns() (iter.Seq[Column], error) {
	return s.ColumnRange("", "")
}

// ColumnRange returns the columns between two letters, inclusive. An empty
// letter falls back to A or the highest column.
func (s *Sheet) ColumnRange(start, end string) (iter.Seq[Column], error) {
	first, last, err := columnWindow(start, end, s.grid.HighestColumn())
	if err != nil {
		return nil, err
	}
	return func(yield func(Column) bool) {
		for col := first; col <= last; col++ {
			if !yield(Column{sheet: s, index: col}) {
				return
			}
		}
	}, nil
}

// Row returns row n of the grid.
func (s *Sheet) Row(n int) (Row, error) {
	if n < 1 || n > s.grid.HighestRow() {
		return Row{}, rowRangeError(n, s.grid.HighestRow())
	}
	return Row{sheet: s, number: n}, nil
}

// First returns the first row of the effective row window.
func (s *Sheet) First() (Row, error) {
	first, _, err := s.rowWindow(0, 0)
	if err != nil {
		return Row{}, err
	}
	return s.Row(first)
}

// Column returns the column with the given letter.
func (s *Sheet) Column(letter string) (Column, error) {
	col, err := s.columnIndex(letter)
	if err != nil {
		return Column{}, err
	}
	return Column{sheet: s, index: col}, nil
}

func (s *Sheet) columnIndex(letter string) (int, error) {
	col, err := LetterToColumnIndex(letter)
	if err != nil {
		return 0, err
	}
	if col > s.grid.HighestColumn() {
		return 0, columnRangeError(letter, s.grid.HighestColumn())
	}
	return col, nil
}

// Cell returns the cell at an "A1"-style coordinate. Unset cells inside the
// grid have a nil value.
func (s *Sheet) Cell(coord string) (Cell, error) {
	col, row, err := ParseCoordinate(coord)
	if err != nil {
		return Cell{}, err
	}
	if !s.grid.Contains(row, col) {
		return Cell{}, fmt.Errorf("%w: %s is outside the sheet", ErrInvalidCoordinate, coord)
	}
	return s.cellAt(col, row), nil
}

// HasCell reports whether coord parses and lies inside the grid.
func (s *Sheet) HasCell(coord string) bool {
	col, row, err := ParseCoordinate(coord)
	return err == nil && s.grid.Contains(row, col)
}

func (s *Sheet) cellAt(col, row int) Cell {
	v, _ := s.grid.Value(row, col)
	return Cell{column: col, row: row, value: v}
}

// Count returns the number of rows Rows would yield. Inverted bounds yield
// nothing and count as 0.
func (s *Sheet) Count() int {
	first, last, err := s.rowWindow(0, 0)
	if err != nil || first > last {
		return 0
	}
	return last - first + 1
}

// ColumnCount returns the number of columns. Row bounds do not affect it.
func (s *Sheet) ColumnCount() int {
	return s.grid.HighestColumn()
}

// ToArray returns the rows of the effective row window. Each element is a
// []any of cell values when no heading row is active, or a Record keyed by
// heading value otherwise.
func (s *Sheet) ToArray() ([]any, error) {
	if s.config.Heading.Active() {
		records, err := s.Records()
		if err != nil {
			return nil, err
		}
		out := make([]any, len(records))
		for i, r := range records {
			out[i] = r
		}
		return out, nil
	}

	values, err := s.Values()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out, nil
}

// Values returns the cell values of every row in the effective row window.
func (s *Sheet) Values() ([][]any, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, err
	}
	out := make([][]any, 0, s.Count())
	for row := range rows {
		out = append(out, row.Values())
	}
	return out, nil
}

// Records returns every row of the effective row window keyed by heading
// value. Without a heading row the keys are the column letters.
func (s *Sheet) Records() ([]Record, error) {
	rows, err := s.Rows()
	if err != nil {
		return nil, err
	}

	var keys []any
	if s.config.Heading.Active() {
		keys = s.Headings().Values()
	} else {
		for col := 1; col <= s.grid.HighestColumn(); col++ {
			keys = append(keys, columnLetter(col))
		}
	}

	out := make([]Record, 0, s.Count())
	for row := range rows {
		rec := make(Record, 0, len(keys))
		for i, v := range row.Values() {
			rec = rec.set(keys[i], v)
		}
		out = append(out, rec)
	}
	return out, nil
}

// PrintAreas returns the print areas defined for the sheet.
func (s *Sheet) PrintAreas() []models.Area {
	return append([]models.Area(nil), s.printAreas...)
}

// UsePrintArea restricts the row bounds to the i-th print area.
func (s *Sheet) UsePrintArea(i int) error {
	if i < 0 || i >= len(s.printAreas) {
		return fmt.Errorf("%w: %d on sheet %q", ErrPrintAreaNotFound, i, s.title)
	}
	a := s.printAreas[i]
	s.SetStartRow(a.R1)
	s.SetEndRow(a.R2)
	return nil
}

// Summary describes the sheet dimensions.
func (s *Sheet) Summary() models.SheetSummary {
	sum := models.SheetSummary{
		Title:         s.title,
		Index:         s.index,
		Rows:          s.grid.HighestRow(),
		Columns:       s.grid.HighestColumn(),
		HighestColumn: s.HighestColumn(),
		Hidden:        s.hidden,
	}
	if area, ok := s.grid.UsedRange(); ok {
		sum.UsedRange, _ = FormatRange(area)
	}
	return sum
}
