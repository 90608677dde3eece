package parser

import (
	"path/filepath"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes an .xlsx/.xlsm workbook with excelize.
func ReadXLSX(path string, opts ReadOptions) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := readExcelizeFile(f, opts)
	if err != nil {
		return nil, err
	}
	wb.BookName = filepath.Base(path)
	return wb, nil
}

func readExcelizeFile(f *excelize.File, opts ReadOptions) (*models.Workbook, error) {
	log := opts.logger()
	printAreas := ExtractPrintAreas(f)

	wb := &models.Workbook{}
	for idx, sheetName := range f.GetSheetList() {
		visible, err := f.GetSheetVisible(sheetName)
		hidden := err == nil && !visible
		if hidden && !opts.IncludeHidden {
			log.Debug("skipping hidden sheet", "sheet", sheetName)
			continue
		}

		grid, err := ExtractCells(f, sheetName, opts)
		if err != nil {
			return nil, &SheetError{SheetName: sheetName, Err: err}
		}
		rows, cols := grid.Dimensions()
		log.Debug("decoded sheet", "sheet", sheetName, "rows", rows, "columns", cols)

		wb.Sheets = append(wb.Sheets, models.SheetData{
			Title:      sheetName,
			Index:      idx,
			Hidden:     hidden,
			Grid:       grid,
			PrintAreas: printAreas[sheetName],
		})
	}
	return wb, nil
}
