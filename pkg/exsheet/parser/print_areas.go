package parser

import (
	"strings"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas collects the print areas defined in a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		if !isPrintAreaName(dn.Name) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			// Unqualified reference: the defined name's scope is the sheet.
			sheetName = dn.Scope
		}
		if sheetName == "" || sheetName == "Workbook" || len(areas) == 0 {
			continue
		}
		result[sheetName] = append(result[sheetName], areas...)
	}

	return result
}

func isPrintAreaName(name string) bool {
	return strings.EqualFold(name, "_xlnm.Print_Area") || strings.EqualFold(name, "Print_Area")
}

// parsePrintAreaReference splits a print area reference into its sheet name
// and areas.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10,SheetName!$F$1:$G$4
func parsePrintAreaReference(ref string) (string, []models.Area) {
	var (
		sheetName string
		areas     []models.Area
	)

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			rangeStr = part[idx+1:]
			if sheetName == "" {
				sheetName = unquoteSheetName(part[:idx])
			}
		}

		if area, ok := parseRangeToArea(rangeStr); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// unquoteSheetName strips the quotes around a sheet name and restores
// doubled apostrophes ('Bob''s' -> Bob's).
func unquoteSheetName(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}

// parseRangeToArea parses a range string like $A$1:$D$10 to an Area.
// A single cell reference yields a one-cell area.
func parseRangeToArea(rangeStr string) (models.Area, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Area{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Area{}, false
	}

	return models.Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}.Normalize(), true
}
