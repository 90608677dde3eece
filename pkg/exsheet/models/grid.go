package models

// Grid is a rectangular store of cell values for one sheet.
// Rows and columns are 1-based. A Grid is immutable once built and may be
// shared between any number of readers.
type Grid struct {
	rows   [][]any
	maxRow int
	maxCol int
}

// Dimensions returns the highest populated row and column.
func (g *Grid) Dimensions() (rows, cols int) {
	if g == nil {
		return 0, 0
	}
	return g.maxRow, g.maxCol
}

// HighestRow returns the highest populated row (0 for an empty grid).
func (g *Grid) HighestRow() int {
	r, _ := g.Dimensions()
	return r
}

// HighestColumn returns the highest populated column (0 for an empty grid).
func (g *Grid) HighestColumn() int {
	_, c := g.Dimensions()
	return c
}

// Value returns the value stored at (row, col). The boolean reports whether
// a non-nil value is present.
func (g *Grid) Value(row, col int) (any, bool) {
	if g == nil || row < 1 || col < 1 || row > len(g.rows) {
		return nil, false
	}
	r := g.rows[row-1]
	if col > len(r) || r[col-1] == nil {
		return nil, false
	}
	return r[col-1], true
}

// Contains reports whether (row, col) lies inside the grid dimensions.
func (g *Grid) Contains(row, col int) bool {
	return row >= 1 && col >= 1 && row <= g.HighestRow() && col <= g.HighestColumn()
}

// UsedRange returns the bounding box of non-empty cells.
// ok is false when the grid holds no values.
func (g *Grid) UsedRange() (area Area, ok bool) {
	if g == nil {
		return Area{}, false
	}
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for rowIdx, row := range g.rows {
		for colIdx, v := range row {
			if v == nil {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if minRow < 0 {
		return Area{}, false
	}
	return Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// GridBuilder accumulates cell values while a loader decodes a sheet.
// Its dimensions only ever grow. Build freezes the collected values.
type GridBuilder struct {
	rows   [][]any
	maxRow int
	maxCol int
	built  bool
}

// NewGridBuilder returns an empty builder.
func NewGridBuilder() *GridBuilder {
	return &GridBuilder{}
}

// Set stores v at (row, col). Nil values are ignored, as are coordinates
// below 1 and any call after Build.
func (b *GridBuilder) Set(row, col int, v any) {
	if b.built || row < 1 || col < 1 || v == nil {
		return
	}
	for len(b.rows) < row {
		b.rows = append(b.rows, nil)
	}
	r := b.rows[row-1]
	for len(r) < col {
		r = append(r, nil)
	}
	r[col-1] = v
	b.rows[row-1] = r

	if row > b.maxRow {
		b.maxRow = row
	}
	if col > b.maxCol {
		b.maxCol = col
	}
}

// SetRow stores values left to right starting at column 1 of row.
func (b *GridBuilder) SetRow(row int, values []any) {
	for i, v := range values {
		b.Set(row, i+1, v)
	}
}

// Dimensions returns the highest row and column set so far.
func (b *GridBuilder) Dimensions() (rows, cols int) {
	return b.maxRow, b.maxCol
}

// Build freezes the builder and returns the resulting grid.
func (b *GridBuilder) Build() *Grid {
	b.built = true
	return &Grid{
		rows:   b.rows,
		maxRow: b.maxRow,
		maxCol: b.maxCol,
	}
}
