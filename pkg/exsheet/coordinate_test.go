package exsheet

import (
	"errors"
	"testing"

	"github.com/ukaji3/exsheet-go/pkg/exsheet/models"
)

func TestColumnIndexToLetter(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}

	for _, tt := range tests {
		got, err := ColumnIndexToLetter(tt.n)
		if err != nil {
			t.Errorf("ColumnIndexToLetter(%d) unexpected error: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ColumnIndexToLetter(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestColumnIndexToLetterInvalid(t *testing.T) {
	for _, n := range []int{0, -1, MaxColumns + 1} {
		if _, err := ColumnIndexToLetter(n); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("ColumnIndexToLetter(%d) error = %v, want ErrInvalidCoordinate", n, err)
		}
	}
}

func TestLetterToColumnIndex(t *testing.T) {
	tests := []struct {
		s       string
		want    int
		wantErr bool
	}{
		{"A", 1, false},
		{"Z", 26, false},
		{"AA", 27, false},
		{"d", 4, false},
		{"aa", 27, false},
		{"XFD", 16384, false},
		{"", 0, true},
		{"A1", 0, true},
		{"1", 0, true},
		{"A-", 0, true},
		{"XFE", 0, true},
	}

	for _, tt := range tests {
		got, err := LetterToColumnIndex(tt.s)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("LetterToColumnIndex(%q) error = %v, want ErrInvalidCoordinate", tt.s, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("LetterToColumnIndex(%q) unexpected error: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LetterToColumnIndex(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestColumnLetterRoundTrip(t *testing.T) {
	for n := 1; n <= MaxColumns; n++ {
		letter, err := ColumnIndexToLetter(n)
		if err != nil {
			t.Fatalf("ColumnIndexToLetter(%d) unexpected error: %v", n, err)
		}
		got, err := LetterToColumnIndex(letter)
		if err != nil {
			t.Fatalf("LetterToColumnIndex(%q) unexpected error: %v", letter, err)
		}
		if got != n {
			t.Fatalf("round trip of %d gave %q -> %d", n, letter, got)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		coord   string
		wantCol int
		wantRow int
		wantErr bool
	}{
		{"A1", 1, 1, false},
		{"B10", 2, 10, false},
		{"b10", 2, 10, false},
		{"$C$5", 3, 5, false},
		{"AA100", 27, 100, false},
		{"XFD1048576", 16384, 1048576, false},
		{"", 0, 0, true},
		{"10", 0, 0, true},
		{"B", 0, 0, true},
		{"B0", 0, 0, true},
		{"B-1", 0, 0, true},
		{"1B", 0, 0, true},
		{"ZZZ1000", 0, 0, true},
	}

	for _, tt := range tests {
		col, row, err := ParseCoordinate(tt.coord)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("ParseCoordinate(%q) error = %v, want ErrInvalidCoordinate", tt.coord, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoordinate(%q) unexpected error: %v", tt.coord, err)
			continue
		}
		if col != tt.wantCol || row != tt.wantRow {
			t.Errorf("ParseCoordinate(%q) = (%d, %d), want (%d, %d)", tt.coord, col, row, tt.wantCol, tt.wantRow)
		}
	}
}

func TestFormatCoordinate(t *testing.T) {
	got, err := FormatCoordinate(2, 10)
	if err != nil || got != "B10" {
		t.Errorf("FormatCoordinate(2, 10) = %q, %v, want \"B10\"", got, err)
	}
	if _, err := FormatCoordinate(0, 1); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("FormatCoordinate(0, 1) error = %v, want ErrInvalidCoordinate", err)
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref     string
		want    models.Area
		wantErr bool
	}{
		{"A1:D10", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"D10:A1", models.Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"B2", models.Area{R1: 2, C1: 2, R2: 2, C2: 2}, false},
		{"$A$1:$B$2", models.Area{R1: 1, C1: 1, R2: 2, C2: 2}, false},
		{"A1:", models.Area{}, true},
		{"nope", models.Area{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.ref)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q) expected error, got %+v", tt.ref, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", tt.ref, got, tt.want)
		}
	}

	s, err := FormatRange(models.Area{R1: 1, C1: 1, R2: 11, C2: 4})
	if err != nil || s != "A1:D11" {
		t.Errorf("FormatRange = %q, %v, want \"A1:D11\"", s, err)
	}
}
