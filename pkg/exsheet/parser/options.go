// Package parser decodes spreadsheet files into grids of typed cell values.
package parser

import "log/slog"

// ReadOptions configures the loader back-ends.
type ReadOptions struct {
	// IncludeHidden keeps hidden sheets in the result. Only the excelize
	// back-end knows about sheet visibility.
	IncludeHidden bool
	// RawValues reads cell values without applying number formats
	// (excelize back-end only).
	RawValues bool
	// StringsOnly disables number inference; every value stays a string.
	StringsOnly bool
	// Delimiter is the CSV field separator. Zero means ','.
	Delimiter rune
	// Encoding names the character set of CSV input, e.g. "utf-8",
	// "iso-8859-1" or "windows-1252". Empty means UTF-8. For .xls files it
	// is passed to the decoder as the charset.
	Encoding string
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

func (o ReadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o ReadOptions) value(s string) any {
	if o.StringsOnly {
		if s == "" {
			return nil
		}
		return s
	}
	return parseValue(s)
}
