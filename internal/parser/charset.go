package parser

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewUTF8Reader wraps an io.Reader with character encoding detection and conversion to UTF-8.
// The encoding comes from the charset parameter of contentType when present, otherwise from
// a BOM, an HTML <meta charset> tag, or a heuristic.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}

// DecodeText converts a whole text body to a UTF-8 string.
//
// Unlike NewUTF8Reader it looks at the full content before falling back to the
// windows-1252 guess, so a body whose first kilobyte is plain ASCII but which
// contains UTF-8 further down is kept intact. A leading UTF-8 BOM is dropped.
func DecodeText(data []byte, contentType string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	enc, name, certain := charset.DetermineEncoding(data, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(data)) {
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s text: %w", name, err)
	}
	return string(decoded), nil
}
