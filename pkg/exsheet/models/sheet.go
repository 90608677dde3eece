package models

// SheetData holds one decoded sheet as produced by a loader.
type SheetData struct {
	// Title is the sheet name shown on its tab.
	Title string `json:"title"`
	// Index is the 0-based position of the sheet in its workbook.
	Index int `json:"index"`
	// Hidden reports whether the sheet is hidden in the workbook.
	Hidden bool `json:"hidden,omitempty"`
	// Grid holds the cell values.
	Grid *Grid `json:"-"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []Area `json:"print_areas,omitempty"`
}
