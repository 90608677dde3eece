package exsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/parser"
	"github.com/xuri/excelize/v2"
)

// writeSimpleXLSX saves the 11x4 "Simple" fixture plus a second sheet.
func writeSimpleXLSX(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Simple"))
	for row := 1; row <= 11; row++ {
		for col := 1; col <= 4; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Simple", cell, cell))
		}
	}
	_, err := f.NewSheet("Numbers")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Numbers", "A1", &[]any{"n", "half"}))
	require.NoError(t, f.SetSheetRow("Numbers", "A2", &[]any{4, 2.5}))

	path := filepath.Join(t.TempDir(), "simple_xlsx.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestOpenXLSX(t *testing.T) {
	path := writeSimpleXLSX(t)

	wb, err := Open(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "simple_xlsx.xlsx", wb.Name())
	assert.Equal(t, 2, wb.SheetCount())
	assert.Equal(t, []string{"Simple", "Numbers"}, wb.SheetNames())

	s, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "Simple", s.Title())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 11, s.Count())
	assert.Equal(t, 4, s.ColumnCount())
	assert.Equal(t, "D", s.HighestColumn())
	assert.True(t, s.HasCell("B10"))
	assert.False(t, s.HasCell("ZZZ1000"))

	n, err := wb.SheetByName("Numbers")
	require.NoError(t, err)
	assert.Equal(t, 1, n.Index())
	row, err := n.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(4), 2.5}, row.Values())
}

func TestOpenStreamEngine(t *testing.T) {
	path := writeSimpleXLSX(t)

	wb, err := Open(path, Options{Engine: EngineStream})
	require.NoError(t, err)

	s, err := wb.SheetByName("Simple")
	require.NoError(t, err)
	assert.Equal(t, 11, s.Count())

	cell, err := s.Cell("C7")
	require.NoError(t, err)
	assert.Equal(t, "C7", cell.Value())
}

func TestOpenAppliesHeadingRow(t *testing.T) {
	path := writeSimpleXLSX(t)

	wb, err := Open(path, Options{HeadingRow: 1})
	require.NoError(t, err)

	s, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Count())

	records, err := s.Records()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"A1": "A2", "B1": "B2", "C1": "C2", "D1": "D2"}, records[0].Map())
}

func TestWorkbookSheetsAreIndependent(t *testing.T) {
	path := writeSimpleXLSX(t)

	wb, err := Open(path, DefaultOptions())
	require.NoError(t, err)

	a, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	a.SetStartRow(5)

	b, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 11, b.Count())
	assert.Same(t, a.Grid(), b.Grid())

	var titles []string
	for s := range wb.Sheets() {
		titles = append(titles, s.Title())
	}
	assert.Equal(t, []string{"Simple", "Numbers"}, titles)
}

func TestWorkbookSummary(t *testing.T) {
	path := writeSimpleXLSX(t)

	wb, err := Open(path, DefaultOptions())
	require.NoError(t, err)

	sum := wb.Summary()
	assert.Equal(t, "simple_xlsx.xlsx", sum.BookName)
	require.Len(t, sum.Sheets, 2)
	assert.Equal(t, "A1:D11", sum.Sheets[0].UsedRange)
	assert.Equal(t, "A1:B2", sum.Sheets[1].UsedRange)
}

func TestOpenCSV(t *testing.T) {
	var b strings.Builder
	for row := 1; row <= 11; row++ {
		fmt.Fprintf(&b, "A%d,B%d,C%d,D%d\n", row, row, row, row)
	}

	wb, err := OpenCSV(strings.NewReader(b.String()), "simple.csv", DefaultOptions())
	require.NoError(t, err)

	s, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "simple", s.Title())
	assert.Equal(t, 11, s.Count())

	s.UseRowAsHeading(3)
	assert.Equal(t, map[string]any{"A": "A3", "B": "B3", "C": "C3", "D": "D3"}, s.Headings().Map())
}

func TestOpenTSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0o644))

	wb, err := Open(path, DefaultOptions())
	require.NoError(t, err)

	s, err := wb.SheetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 2, s.ColumnCount())
	cell, err := s.Cell("B2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cell.Value())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	pdf := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))
	_, err = Open(pdf, DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	broken := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(broken, []byte("not a zip"), 0o644))
	_, err = Open(broken, DefaultOptions())
	var le *LoadError
	require.True(t, errors.As(err, &le), "got %v", err)
	assert.Equal(t, broken, le.Path)
}

func TestSheetLookupErrors(t *testing.T) {
	wb := NewWorkbook(nil, DefaultOptions())

	_, err := wb.SheetByIndex(0)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = wb.SheetByName("Simple")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestLoadErrorCarriesSheetName(t *testing.T) {
	err := newLoadError("book.xlsx", &parser.SheetError{SheetName: "Data", Err: errors.New("boom")})

	assert.Equal(t, "Data", err.SheetName)
	assert.Equal(t, `load book.xlsx (sheet "Data"): sheet "Data": boom`, err.Error())
}

func TestResolveEngine(t *testing.T) {
	tests := []struct {
		opts    Options
		path    string
		want    Engine
		wantErr bool
	}{
		{DefaultOptions(), "a.xlsx", EngineExcelize, false},
		{DefaultOptions(), "a.XLSM", EngineExcelize, false},
		{DefaultOptions(), "a.xls", EngineXLS, false},
		{DefaultOptions(), "a.csv", EngineCSV, false},
		{DefaultOptions(), "a.tsv", EngineCSV, false},
		{Options{Engine: EngineStream}, "a.xlsx", EngineStream, false},
		{Options{}, "a.xlsx", EngineExcelize, false},
		{DefaultOptions(), "a.ods", "", true},
	}

	for _, tt := range tests {
		got, err := tt.opts.ResolveEngine(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ResolveEngine(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ResolveEngine(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
}

func TestParseEngine(t *testing.T) {
	for _, s := range []string{"", "auto", "EXCELIZE", "stream", "xls", "csv"} {
		if _, err := ParseEngine(s); err != nil {
			t.Errorf("ParseEngine(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseEngine("ods"); err == nil {
		t.Error("ParseEngine(\"ods\") expected error")
	}
}

func TestShouldIncludeHidden(t *testing.T) {
	no := false
	if !(Options{}).ShouldIncludeHidden() {
		t.Error("hidden sheets should be included by default")
	}
	if (Options{IncludeHidden: &no}).ShouldIncludeHidden() {
		t.Error("IncludeHidden=false should exclude hidden sheets")
	}
}
