package exsheet

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/parser"
)

// Workbook is a loaded document. Its grids are immutable; every sheet lookup
// returns a fresh Sheet configured from the workbook options.
type Workbook struct {
	data *models.Workbook
	opts Options
}

// Open loads the workbook at path.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	engine, err := opts.ResolveEngine(path)
	if err != nil {
		return nil, err
	}
	ropts := opts.readOptions(path)

	var data *models.Workbook
	switch engine {
	case EngineExcelize:
		data, err = parser.ReadXLSX(path, ropts)
	case EngineStream:
		data, err = parser.ReadXLSXStream(path, ropts)
	case EngineXLS:
		data, err = parser.ReadXLS(path, ropts)
	case EngineCSV:
		data, err = readCSVFile(path, ropts)
	default:
		return nil, fmt.Errorf("%w: engine %q", ErrUnsupportedFormat, engine)
	}
	if err != nil {
		return nil, newLoadError(path, err)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("workbook loaded", "path", path, "engine", string(engine), "sheets", len(data.Sheets))
	}
	return NewWorkbook(data, opts), nil
}

// OpenCSV loads delimited text from r. name is used as book name and, without
// its extension, as sheet title.
func OpenCSV(r io.Reader, name string, opts Options) (*Workbook, error) {
	data, err := parser.ReadCSV(r, name, opts.readOptions(name))
	if err != nil {
		return nil, newLoadError(name, err)
	}
	return NewWorkbook(data, opts), nil
}

func readCSVFile(path string, opts parser.ReadOptions) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.ReadCSV(f, path, opts)
}

func newLoadError(path string, err error) *LoadError {
	le := &LoadError{Path: path, Err: err}
	var se *parser.SheetError
	if errors.As(err, &se) {
		le.SheetName = se.SheetName
	}
	return le
}

// NewWorkbook wraps already decoded data.
func NewWorkbook(data *models.Workbook, opts Options) *Workbook {
	if data == nil {
		data = &models.Workbook{}
	}
	return &Workbook{data: data, opts: opts}
}

// Name returns the workbook file name.
func (w *Workbook) Name() string {
	return w.data.BookName
}

// SheetCount returns the number of loaded sheets.
func (w *Workbook) SheetCount() int {
	return len(w.data.Sheets)
}

// SheetNames returns the sheet titles in order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.data.Sheets))
	for i, s := range w.data.Sheets {
		names[i] = s.Title
	}
	return names
}

// SheetByIndex returns the i-th loaded sheet (0-based).
func (w *Workbook) SheetByIndex(i int) (*Sheet, error) {
	if i < 0 || i >= len(w.data.Sheets) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrSheetNotFound, i, len(w.data.Sheets))
	}
	return w.newSheet(w.data.Sheets[i]), nil
}

// SheetByName returns the sheet with the given title.
func (w *Workbook) SheetByName(name string) (*Sheet, error) {
	data, ok := w.data.SheetByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return w.newSheet(*data), nil
}

// Sheets yields every loaded sheet in order.
func (w *Workbook) Sheets() iter.Seq[*Sheet] {
	return func(yield func(*Sheet) bool) {
		for _, data := range w.data.Sheets {
			if !yield(w.newSheet(data)) {
				return
			}
		}
	}
}

// Summary lists the sheets and their dimensions.
func (w *Workbook) Summary() models.WorkbookSummary {
	sum := models.WorkbookSummary{BookName: w.data.BookName}
	for s := range w.Sheets() {
		sum.Sheets = append(sum.Sheets, s.Summary())
	}
	return sum
}

func (w *Workbook) newSheet(data models.SheetData) *Sheet {
	s := NewSheet(data)
	if w.opts.HeadingRow > 0 {
		s.UseRowAsHeading(w.opts.HeadingRow)
	}
	return s
}
