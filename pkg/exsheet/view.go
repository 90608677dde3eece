package exsheet

import (
	"iter"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

// Row is a view of one row of a sheet. It spans every column of the grid and
// can be iterated any number of times.
type Row struct {
	sheet  *Sheet
	number int
}

// Number returns the 1-based row number.
func (r Row) Number() int {
	return r.number
}

// Cells yields the cells of the row from column A to the highest column.
func (r Row) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for col := 1; col <= r.sheet.grid.HighestColumn(); col++ {
			if !yield(r.sheet.cellAt(col, r.number)) {
				return
			}
		}
	}
}

// Values returns the cell values of the row in column order.
func (r Row) Values() []any {
	out := make([]any, 0, r.sheet.grid.HighestColumn())
	for c := range r.Cells() {
		out = append(out, c.Value())
	}
	return out
}

// Cell returns the cell of this row in the given column.
func (r Row) Cell(letter string) (Cell, error) {
	col, err := r.sheet.columnIndex(letter)
	if err != nil {
		return Cell{}, err
	}
	return r.sheet.cellAt(col, r.number), nil
}

// Sparse returns the non-empty cells of the row keyed by column letter.
func (r Row) Sparse() models.CellRow {
	out := models.CellRow{R: r.number, C: make(map[string]any)}
	for c := range r.Cells() {
		if !c.IsEmpty() {
			out.C[c.Column()] = c.Value()
		}
	}
	return out
}

// Column is a view of one column of a sheet. Its cells follow the sheet's
// effective row window, so the heading row is never part of it.
type Column struct {
	sheet *Sheet
	index int
}

// Letter returns the column letter.
func (c Column) Letter() string {
	return columnLetter(c.index)
}

// Index returns the 1-based column index.
func (c Column) Index() int {
	return c.index
}

// Cells returns the cells of the column within the sheet's effective row
// window at the time of the call.
func (c Column) Cells() (iter.Seq[Cell], error) {
	first, last, err := c.sheet.rowWindow(0, 0)
	if err != nil {
		return nil, err
	}
	return func(yield func(Cell) bool) {
		for row := first; row <= last; row++ {
			if !yield(c.sheet.cellAt(c.index, row)) {
				return
			}
		}
	}, nil
}

// Values returns the values of Cells in row order.
func (c Column) Values() ([]any, error) {
	cells, err := c.Cells()
	if err != nil {
		return nil, err
	}
	var out []any
	for cell := range cells {
		out = append(out, cell.Value())
	}
	return out, nil
}
