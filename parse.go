package planfind

import (
	"bytes"
	"io"
	"strings"
)

// Parse reads JSON from r and builds the document tree.
func Parse(r io.Reader) (*Node, error) {
	return parse(lex(r))
}

// ParseString builds the document tree held by the JSON string s.
func ParseString(s string) (*Node, error) {
	return parse(lex(strings.NewReader(s)))
}

// ParseBytes builds the document tree held by the JSON encoding data.
func ParseBytes(data []byte) (*Node, error) {
	return parse(lex(bytes.NewReader(data)))
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	_, err := ParseBytes(data)
	return err == nil
}
