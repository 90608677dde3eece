package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV decodes delimited text into a single-sheet workbook.
// name is used for the book name; the sheet title is name without its
// extension.
func ReadCSV(r io.Reader, name string, opts ReadOptions) (*models.Workbook, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	b := models.NewGridBuilder()
	rowNum := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rowNum++
		for colIdx, field := range record {
			if field == "" {
				continue
			}
			b.Set(rowNum, colIdx+1, opts.value(field))
		}
	}

	base := filepath.Base(name)
	grid := b.Build()
	rows, cols := grid.Dimensions()
	opts.logger().Debug("decoded csv", "name", base, "rows", rows, "columns", cols)

	return &models.Workbook{
		BookName: base,
		Sheets: []models.SheetData{{
			Title: strings.TrimSuffix(base, filepath.Ext(base)),
			Index: 0,
			Grid:  grid,
		}},
	}, nil
}

// decoderFor returns a UTF-8 transformer for the named character set.
// UTF-8 input may carry a byte order mark, which is dropped.
func decoderFor(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder(), nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		// The WHATWG index maps latin1 to windows-1252; keep true ISO-8859-1.
		return charmap.ISO8859_1.NewDecoder(), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc.NewDecoder(), nil
}
