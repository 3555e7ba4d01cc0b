package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available on this system
var ErrUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// Reader reads text from a clipboard
type Reader interface {
	ReadText(ctx context.Context) (string, error)
}

// SystemReader reads the operating system clipboard
type SystemReader struct{}

// ReadText implements Reader
func (SystemReader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

// StaticReader returns fixed content; used when the text comes from somewhere else
// than the system clipboard (stdin, tests).
type StaticReader struct {
	Text string
	Err  error
}

// ReadText implements Reader
func (r StaticReader) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.Text, r.Err
}
