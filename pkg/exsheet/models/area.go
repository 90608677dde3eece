package models

// Area represents 1-based, inclusive cell coordinate bounds.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Normalize returns the area with its corners ordered so that R1 <= R2 and
// C1 <= C2.
func (a Area) Normalize() Area {
	if a.R1 > a.R2 {
		a.R1, a.R2 = a.R2, a.R1
	}
	if a.C1 > a.C2 {
		a.C1, a.C2 = a.C2, a.C1
	}
	return a
}

// Rows returns the number of rows covered by the area.
func (a Area) Rows() int {
	a = a.Normalize()
	return a.R2 - a.R1 + 1
}

// Columns returns the number of columns covered by the area.
func (a Area) Columns() int {
	a = a.Normalize()
	return a.C2 - a.C1 + 1
}
