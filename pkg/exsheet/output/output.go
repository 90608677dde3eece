// Package output renders exported sheet data as JSON or TOON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	toon "github.com/mateuszkardas/toon-go"
)

// Format is an output encoding.
type Format string

const (
	// FormatJSON renders JSON.
	FormatJSON Format = "json"
	// FormatTOON renders Token-Oriented Object Notation, a compact form for
	// LLM prompts.
	FormatTOON Format = "toon"
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatTOON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json or toon)", s)
	}
}

// Render encodes v in the given format. pretty only affects JSON.
func Render(v any, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(v, pretty)
	case FormatTOON:
		return ToTOON(v)
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

// ToJSON serializes v to JSON. HTML characters are not escaped so cell text
// survives unchanged.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ToTOON serializes v to TOON. v is first normalized through its JSON form so
// custom JSON encodings (ordered records, headings) are honoured; object key
// order is not preserved.
func ToTOON(v any) ([]byte, error) {
	raw, err := ToJSON(v, false)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	s, err := toon.Marshal(normalizeNumbers(generic), nil)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// normalizeNumbers turns json.Number values back into int64 or float64.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []any:
		for i := range t {
			t[i] = normalizeNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeNumbers(t[k])
		}
		return t
	default:
		return v
	}
}
