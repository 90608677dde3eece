package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads every row of a sheet into a grid.
// Rows are streamed with excelize's row iterator; empty cells are left unset.
func ExtractCells(f *excelize.File, sheetName string, opts ReadOptions) (*models.Grid, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colOpts []excelize.Options
	if opts.RawValues {
		colOpts = append(colOpts, excelize.Options{RawCellValue: true})
	}

	b := models.NewGridBuilder()
	rowNum := 0
	for rows.Next() {
		rowNum++ // 1-based row index
		cols, err := rows.Columns(colOpts...)
		if err != nil {
			return nil, err
		}
		for colIdx, cellValue := range cols {
			if cellValue == "" {
				continue
			}
			b.Set(rowNum, colIdx+1, opts.value(cellValue))
		}
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, nil for the empty
// string, or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	// Leading zeros are identifiers (postcodes, account numbers), not numbers.
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		// ParseFloat accepts hex and underscores; spreadsheets never emit them.
		if !strings.ContainsAny(s, "xX_pP") {
			return f
		}
	}
	// Return as string
	return s
}
