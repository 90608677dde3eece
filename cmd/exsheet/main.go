// Package main provides the CLI entry point for exsheet-go.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exsheet-go/pkg/exsheet"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
	"github.com/ukaji3/exsheet-go/pkg/exsheet/output"
)

var (
	outputPath    string
	pretty        bool
	format        string
	engine        string
	sheetIndex    int
	sheetName     string
	headingRow    int
	startRow      int
	endRow        int
	columnRange   string
	printArea     int
	delimiter     string
	encoding      string
	includeHidden bool
	rawValues     bool
	stringsOnly   bool
	sparse        bool
	listSheets    bool
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exsheet [input.xlsx|input.xls|input.csv]",
		Short: "Export spreadsheet rows as JSON or TOON",
		Long: `exsheet-go reads a sheet of a spreadsheet file and exports its rows,
optionally windowed by row and column bounds and keyed by a heading row.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&format, "format", "json", "Output format: json, toon")
	flags.StringVar(&engine, "engine", "auto", "Loader: auto, excelize, stream, xls, csv")
	flags.IntVar(&sheetIndex, "sheet", 0, "Sheet index (0-based)")
	flags.StringVar(&sheetName, "sheet-name", "", "Sheet name (overrides --sheet)")
	flags.IntVar(&headingRow, "heading-row", 0, "Row holding column headings (0: none)")
	flags.IntVar(&startRow, "start", 0, "First row to export")
	flags.IntVar(&endRow, "end", 0, "Last row to export")
	flags.StringVar(&columnRange, "columns", "", "Column range to export, e.g. B:D")
	flags.IntVar(&printArea, "print-area", -1, "Use the n-th print area of the sheet as row bounds")
	flags.StringVar(&delimiter, "delimiter", "", "CSV field delimiter (default: ',' or tab for .tsv)")
	flags.StringVar(&encoding, "encoding", "", "Character set of CSV/XLS input (default: utf-8)")
	flags.BoolVar(&includeHidden, "include-hidden", true, "Include hidden sheets")
	flags.BoolVar(&rawValues, "raw", false, "Read values without number formats")
	flags.BoolVar(&stringsOnly, "strings", false, "Keep every value as a string")
	flags.BoolVar(&sparse, "sparse", false, "Export rows as {r, c} objects holding non-empty cells only")
	flags.BoolVar(&listSheets, "list", false, "List sheets and their dimensions instead of exporting")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log loader details to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	opts, err := buildOptions(logger)
	if err != nil {
		return err
	}

	wb, err := exsheet.Open(inputPath, opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	var payload any
	if listSheets {
		payload = wb.Summary()
	} else {
		sheet, err := selectSheet(wb)
		if err != nil {
			return err
		}
		if err := configureSheet(sheet); err != nil {
			return err
		}
		export, err := exportSheet(wb.Name(), sheet, columnRange, sparse)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		logger.Debug("sheet exported", "sheet", sheet.Title(), "rows", len(export.Rows))
		payload = export
	}

	data, err := output.Render(payload, outFormat, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func buildOptions(logger *slog.Logger) (exsheet.Options, error) {
	eng, err := exsheet.ParseEngine(engine)
	if err != nil {
		return exsheet.Options{}, err
	}

	opts := exsheet.DefaultOptions()
	opts.Engine = eng
	opts.IncludeHidden = &includeHidden
	opts.RawValues = rawValues
	opts.StringsOnly = stringsOnly
	opts.Encoding = encoding
	opts.Logger = logger

	if delimiter != "" {
		d := strings.ReplaceAll(delimiter, `\t`, "\t")
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) {
			return exsheet.Options{}, fmt.Errorf("invalid delimiter: %q (must be a single character)", delimiter)
		}
		opts.Delimiter = r
	}
	return opts, nil
}

func selectSheet(wb *exsheet.Workbook) (*exsheet.Sheet, error) {
	if sheetName != "" {
		return wb.SheetByName(sheetName)
	}
	return wb.SheetByIndex(sheetIndex)
}

func configureSheet(sheet *exsheet.Sheet) error {
	if headingRow > 0 {
		sheet.UseRowAsHeading(headingRow)
	}
	if printArea >= 0 {
		if err := sheet.UsePrintArea(printArea); err != nil {
			return err
		}
	}
	if startRow > 0 {
		sheet.SetStartRow(startRow)
	}
	if endRow > 0 {
		sheet.SetEndRow(endRow)
	}
	return nil
}

// exportSheet collects the rows in bounds. columns ("B:D", "C" or "")
// restricts the export to a column range.
func exportSheet(bookName string, sheet *exsheet.Sheet, columns string, sparse bool) (models.SheetExport, error) {
	export := models.SheetExport{
		BookName:  bookName,
		SheetName: sheet.Title(),
		Index:     sheet.Index(),
		Rows:      []any{},
	}
	keyed := sheet.HeadingRow().Active()
	if keyed {
		export.Headings = sheet.Headings()
	}

	if columns == "" && !sparse {
		rows, err := sheet.ToArray()
		if err != nil {
			return export, err
		}
		export.Rows = rows
		return export, nil
	}

	from, to, _ := strings.Cut(columns, ":")
	if to == "" {
		to = from
	}
	cols, err := sheet.ColumnRange(from, to)
	if err != nil {
		return export, err
	}
	var letters []string
	for c := range cols {
		letters = append(letters, c.Letter())
	}

	switch {
	case sparse:
		rows, err := sheet.Rows()
		if err != nil {
			return export, err
		}
		for row := range rows {
			if columns == "" {
				export.Rows = append(export.Rows, row.Sparse())
				continue
			}
			export.Rows = append(export.Rows, sparseRow(row, letters))
		}
	case keyed:
		records, err := sheet.Records()
		if err != nil {
			return export, err
		}
		keys := make([]any, 0, len(letters))
		for _, l := range letters {
			k, _ := sheet.Headings().Get(l)
			keys = append(keys, k)
		}
		for _, rec := range records {
			export.Rows = append(export.Rows, rec.Select(keys...))
		}
	default:
		rows, err := sheet.Rows()
		if err != nil {
			return export, err
		}
		for row := range rows {
			values := make([]any, 0, len(letters))
			for _, l := range letters {
				c, _ := row.Cell(l)
				values = append(values, c.Value())
			}
			export.Rows = append(export.Rows, values)
		}
	}
	return export, nil
}

func sparseRow(row exsheet.Row, letters []string) models.CellRow {
	out := models.CellRow{R: row.Number(), C: make(map[string]any)}
	for _, l := range letters {
		if c, err := row.Cell(l); err == nil && !c.IsEmpty() {
			out.C[l] = c.Value()
		}
	}
	return out
}
