// Package exsheet exposes spreadsheet sheets as lazily iterated rows and
// columns with optional heading-row projection.
package exsheet

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/parser"
)

// Engine names a loader back-end.
type Engine string

const (
	// EngineAuto picks a back-end from the file extension.
	EngineAuto Engine = "auto"
	// EngineExcelize reads .xlsx/.xlsm/.xltx files with excelize.
	EngineExcelize Engine = "excelize"
	// EngineStream reads .xlsx files with the streaming xlsxreader.
	EngineStream Engine = "stream"
	// EngineXLS reads legacy .xls files.
	EngineXLS Engine = "xls"
	// EngineCSV reads delimited text.
	EngineCSV Engine = "csv"
)

// ParseEngine converts a flag value to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(s)); e {
	case "", EngineAuto:
		return EngineAuto, nil
	case EngineExcelize, EngineStream, EngineXLS, EngineCSV:
		return e, nil
	default:
		return "", fmt.Errorf("invalid engine: %s (must be auto, excelize, stream, xls or csv)", s)
	}
}

// Options configures loading.
type Options struct {
	// Engine selects the loader back-end.
	Engine Engine
	// HeadingRow is applied to every sheet handed out by the workbook.
	// 0 disables the heading row.
	HeadingRow int
	// IncludeHidden specifies whether to keep hidden sheets.
	// If nil, defaults to true.
	IncludeHidden *bool
	// RawValues reads values without number formats (excelize only).
	RawValues bool
	// StringsOnly disables number inference.
	StringsOnly bool
	// Delimiter is the CSV separator. If zero, ',' is used, or '\t' for .tsv
	// files.
	Delimiter rune
	// Encoding is the character set of CSV or .xls input. Empty means UTF-8.
	Encoding string
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Engine: EngineAuto,
	}
}

// ShouldIncludeHidden returns whether to keep hidden sheets.
func (o Options) ShouldIncludeHidden() bool {
	if o.IncludeHidden != nil {
		return *o.IncludeHidden
	}
	return true
}

// ResolveEngine returns the back-end used for path.
func (o Options) ResolveEngine(path string) (Engine, error) {
	if o.Engine != "" && o.Engine != EngineAuto {
		return o.Engine, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return EngineExcelize, nil
	case ".xls":
		return EngineXLS, nil
	case ".csv", ".tsv", ".txt":
		return EngineCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (o Options) readOptions(path string) parser.ReadOptions {
	delim := o.Delimiter
	if delim == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		delim = '\t'
	}
	return parser.ReadOptions{
		IncludeHidden: o.ShouldIncludeHidden(),
		RawValues:     o.RawValues,
		StringsOnly:   o.StringsOnly,
		Delimiter:     delim,
		Encoding:      o.Encoding,
		Logger:        o.Logger,
	}
}
