package core

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// MarshalJSON implements json.Marshaler. Keys are emitted in iteration
// order, so the same document always serializes to the same bytes.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeCompact(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := encodeCompact(d.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeCompact marshals v on one line without HTML escaping, keeping
// non-ASCII text verbatim.
func encodeCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndent renders a document as indented JSON. indent is the
// number of spaces per nesting level; zero or less yields compact
// output. The result carries no trailing newline.
func MarshalIndent(v Value, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, v, indent); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EncodeJSON writes a document to w as indented JSON followed by a
// newline.
func EncodeJSON(w io.Writer, v Value, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(v)
}
