package models

// Workbook is the loader output: a named list of decoded sheets.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// SheetByName returns the sheet titled name.
func (w *Workbook) SheetByName(name string) (*SheetData, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Title == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}
