// Package models defines data structures shared by loaders, sheets and output.
package models

// CellRow represents a single row of cell values keyed by column letter.
// It is the sparse export form of a row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letter to cell value.
	C map[string]any `json:"c"`
}
