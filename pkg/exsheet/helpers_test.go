package exsheet

import (
	"fmt"
	"testing"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

// simpleData is an 11x4 sheet titled "Simple" whose every cell holds its own
// coordinate ("A1" ... "D11").
func simpleData() models.SheetData {
	b := models.NewGridBuilder()
	for row := 1; row <= 11; row++ {
		for col := 1; col <= 4; col++ {
			b.Set(row, col, fmt.Sprintf("%s%d", columnLetter(col), row))
		}
	}
	return models.SheetData{Title: "Simple", Index: 0, Grid: b.Build()}
}

var cachedSheet = NewSheet(simpleData())

// newSimpleSheet returns a fresh clone of the shared fixture with headings
// disabled.
func newSimpleSheet(t *testing.T) *Sheet {
	t.Helper()
	s := cachedSheet.Clone()
	s.DisableHeading()
	return s
}

func collectRows(t *testing.T, s *Sheet) []int {
	t.Helper()
	rows, err := s.Rows()
	if err != nil {
		t.Fatalf("Rows() failed: %v", err)
	}
	var out []int
	for r := range rows {
		out = append(out, r.Number())
	}
	return out
}
