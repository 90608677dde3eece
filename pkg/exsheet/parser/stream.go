package parser

import (
	"path/filepath"

	"github.com/thedatashed/xlsxreader"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSXStream decodes an .xlsx workbook with xlsxreader, which streams
// rows over a channel and keeps a smaller memory footprint than excelize on
// large sheets. Sheet visibility and print areas are not available here.
func ReadXLSXStream(path string, opts ReadOptions) (*models.Workbook, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xl.Close()

	log := opts.logger()
	wb := &models.Workbook{BookName: filepath.Base(path)}
	for idx, sheetName := range xl.Sheets {
		grid, err := streamSheet(xl, sheetName, opts)
		if err != nil {
			return nil, &SheetError{SheetName: sheetName, Err: err}
		}
		rows, cols := grid.Dimensions()
		log.Debug("streamed sheet", "sheet", sheetName, "rows", rows, "columns", cols)

		wb.Sheets = append(wb.Sheets, models.SheetData{
			Title: sheetName,
			Index: idx,
			Grid:  grid,
		})
	}
	return wb, nil
}

func streamSheet(xl *xlsxreader.XlsxFileCloser, sheetName string, opts ReadOptions) (*models.Grid, error) {
	b := models.NewGridBuilder()
	var firstErr error
	// The channel must be drained even after an error so the reader
	// goroutine can exit.
	for row := range xl.ReadRows(sheetName) {
		if firstErr != nil {
			continue
		}
		if row.Error != nil {
			firstErr = row.Error
			continue
		}
		for _, cell := range row.Cells {
			if cell.Value == "" {
				continue
			}
			col, err := excelize.ColumnNameToNumber(cell.Column)
			if err != nil {
				firstErr = err
				break
			}
			b.Set(row.Index, col, opts.value(cell.Value))
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return b.Build(), nil
}
