package parser

import (
	"path/filepath"

	"github.com/extrame/xls"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

// ReadXLS decodes a legacy BIFF8 .xls workbook with extrame/xls.
func ReadXLS(path string, opts ReadOptions) (*models.Workbook, error) {
	charset := opts.Encoding
	if charset == "" {
		charset = "utf-8"
	}
	book, err := xls.Open(path, charset)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	wb := &models.Workbook{BookName: filepath.Base(path)}
	for idx := 0; idx < book.NumSheets(); idx++ {
		sheet := book.GetSheet(idx)
		if sheet == nil {
			log.Debug("skipping unreadable sheet", "index", idx)
			continue
		}

		b := models.NewGridBuilder()
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				if v := row.Col(c); v != "" {
					b.Set(r+1, c+1, opts.value(v))
				}
			}
		}
		grid := b.Build()
		rows, cols := grid.Dimensions()
		log.Debug("decoded sheet", "sheet", sheet.Name, "rows", rows, "columns", cols)

		wb.Sheets = append(wb.Sheets, models.SheetData{
			Title: sheet.Name,
			Index: idx,
			Grid:  grid,
		})
	}
	return wb, nil
}
