package models

// SheetSummary describes a sheet without its values.
type SheetSummary struct {
	// Title is the sheet name.
	Title string `json:"title"`
	// Index is the 0-based sheet position.
	Index int `json:"index"`
	// Rows is the highest populated row.
	Rows int `json:"rows"`
	// Columns is the highest populated column.
	Columns int `json:"columns"`
	// HighestColumn is Columns in letter form.
	HighestColumn string `json:"highest_column,omitempty"`
	// UsedRange is the bounding box of non-empty cells, e.g. "A1:D11".
	UsedRange string `json:"used_range,omitempty"`
	// Hidden reports whether the sheet is hidden.
	Hidden bool `json:"hidden,omitempty"`
}

// SheetExport is the exported content of one sheet.
type SheetExport struct {
	// BookName is the workbook file name.
	BookName string `json:"book_name"`
	// SheetName is the sheet title.
	SheetName string `json:"sheet_name"`
	// Index is the 0-based sheet position.
	Index int `json:"index"`
	// Headings maps column letter to heading value when a heading row is active.
	Headings any `json:"headings,omitempty"`
	// Rows holds one entry per exported row: a value list, or a record keyed
	// by heading value.
	Rows []any `json:"rows"`
}

// WorkbookSummary lists the sheets of a workbook.
type WorkbookSummary struct {
	// BookName is the workbook file name.
	BookName string `json:"book_name"`
	// Sheets lists each sheet in order.
	Sheets []SheetSummary `json:"sheets"`
}
