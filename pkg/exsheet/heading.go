package exsheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Headings maps column letters to the values of the heading row, in column
// order.
type Headings struct {
	letters []string
	values  map[string]any
}

func newHeadings(capacity int) *Headings {
	return &Headings{
		letters: make([]string, 0, capacity),
		values:  make(map[string]any, capacity),
	}
}

func (h *Headings) add(letter string, v any) {
	h.letters = append(h.letters, letter)
	h.values[letter] = v
}

// Len returns the number of columns.
func (h *Headings) Len() int {
	return len(h.letters)
}

// Columns returns the column letters in order.
func (h *Headings) Columns() []string {
	return append([]string(nil), h.letters...)
}

// Get returns the heading value of a column.
func (h *Headings) Get(letter string) (any, bool) {
	v, ok := h.values[letter]
	return v, ok
}

// Values returns the heading values in column order.
func (h *Headings) Values() []any {
	out := make([]any, len(h.letters))
	for i, l := range h.letters {
		out[i] = h.values[l]
	}
	return out
}

// Map returns a copy of the headings as a plain map.
func (h *Headings) Map() map[string]any {
	out := make(map[string]any, len(h.values))
	for k, v := range h.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the headings as an object in column order.
func (h *Headings) MarshalJSON() ([]byte, error) {
	fields := make(Record, len(h.letters))
	for i, l := range h.letters {
		fields[i] = Field{Key: l, Value: h.values[l]}
	}
	return fields.MarshalJSON()
}

// Field is one heading value / cell value pair of a Record.
type Field struct {
	Key   any
	Value any
}

// Record is a row projected onto the heading row: cell values keyed by the
// heading value of their column, in column order. Keys are unique.
type Record []Field

// set assigns v to key, keeping the position of an existing key.
func (r Record) set(key, v any) Record {
	for i := range r {
		if r[i].Key == key {
			r[i].Value = v
			return r
		}
	}
	return append(r, Field{Key: key, Value: v})
}

// Get returns the value stored under key.
func (r Record) Get(key any) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Select returns the fields whose key is one of keys, in record order.
func (r Record) Select(keys ...any) Record {
	out := make(Record, 0, len(keys))
	for _, f := range r {
		for _, k := range keys {
			if f.Key == k {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Keys returns the keys in column order.
func (r Record) Keys() []any {
	out := make([]any, len(r))
	for i, f := range r {
		out[i] = f.Key
	}
	return out
}

// Map returns the record as a plain map keyed by the string form of each key.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r))
	for _, f := range r {
		out[keyString(f.Key)] = f.Value
	}
	return out
}

// MarshalJSON encodes the record as an object in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(keyString(f.Key))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func keyString(k any) string {
	switch v := k.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// headingCache memoizes the headings of one heading selector.
type headingCache struct {
	key      HeadingRow
	headings *Headings
}

func (c *headingCache) get(key HeadingRow, compute func() *Headings) *Headings {
	if c.headings == nil || c.key != key {
		c.key = key
		c.headings = compute()
	}
	return c.headings
}

func (c *headingCache) invalidate() {
	c.headings = nil
}
