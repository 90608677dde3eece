package exsheet

import "fmt"

// Cell is a single addressed value of a sheet.
type Cell struct {
	column int
	row    int
	value  any
}

// Column returns the column letter of the cell.
func (c Cell) Column() string {
	return columnLetter(c.column)
}

// ColumnIndex returns the 1-based column index.
func (c Cell) ColumnIndex() int {
	return c.column
}

// Row returns the 1-based row number.
func (c Cell) Row() int {
	return c.row
}

// Value returns the cell value: nil, string, int64, float64 or bool.
func (c Cell) Value() any {
	return c.value
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.value == nil
}

// Coordinate returns the "A1"-style address of the cell.
func (c Cell) Coordinate() string {
	return fmt.Sprintf("%s%d", c.Column(), c.row)
}

func (c Cell) String() string {
	return fmt.Sprintf("%s=%v", c.Coordinate(), c.value)
}
