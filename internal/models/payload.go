package models

import (
	"github.com/samber/mo"
)

// Payload is the body of a successful extraction: either text (left) or raw bytes (right).
// The variant is decided once by the client from the requested format.
type Payload struct {
	value mo.Either[string, []byte]
}

// NewTextPayload wraps human readable subtitle text
func NewTextPayload(text string) Payload {
	return Payload{value: mo.Left[string, []byte](text)}
}

// NewBinaryPayload wraps an opaque subtitle file that must be kept byte for byte
func NewBinaryPayload(data []byte) Payload {
	return Payload{value: mo.Right[string, []byte](data)}
}

// IsText reports whether the payload holds text
func (p Payload) IsText() bool {
	return p.value.IsLeft()
}

// Text returns the text variant
func (p Payload) Text() (string, bool) {
	return p.value.Left()
}

// Binary returns the binary variant
func (p Payload) Binary() ([]byte, bool) {
	return p.value.Right()
}

// Bytes returns the payload as bytes; text is UTF-8 encoded
func (p Payload) Bytes() []byte {
	if text, ok := p.value.Left(); ok {
		return []byte(text)
	}
	return p.value.RightOrEmpty()
}

// Len returns the payload size in bytes
func (p Payload) Len() int {
	if text, ok := p.value.Left(); ok {
		return len(text)
	}
	return len(p.value.RightOrEmpty())
}

// ContentType returns the MIME type the payload is saved as
func (p Payload) ContentType() string {
	if p.IsText() {
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}
