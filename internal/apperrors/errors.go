package apperrors

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a submission arrives while another one is still in flight.
var ErrBusy = errors.New("another subtitle request is already in progress")

// ErrEmptyClipboard is reported when the clipboard was readable but held no text.
var ErrEmptyClipboard = errors.New("clipboard is empty")

// ValidationError is returned when the submitted video URL is empty or malformed.
type ValidationError struct {
	Input string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Input == "" {
		return "video URL is empty"
	}
	return fmt.Sprintf("invalid YouTube video URL: %q", e.Input)
}

// Is allows for error checking with errors.Is().
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// ClipboardAccessError is returned when the clipboard cannot be read.
type ClipboardAccessError struct {
	Err error
}

// Error implements the error interface.
func (e *ClipboardAccessError) Error() string {
	return fmt.Sprintf("clipboard access failed: %v", e.Err)
}

// Unwrap returns the underlying clipboard error.
func (e *ClipboardAccessError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ClipboardAccessError) Is(target error) bool {
	_, ok := target.(*ClipboardAccessError)
	return ok
}

// TransportError is returned when the backend cannot be reached or the response body cannot be read.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

// BackendError is returned when the extraction backend answers with a non-2xx status.
type BackendError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Is allows for error checking with errors.Is().
func (e *BackendError) Is(target error) bool {
	_, ok := target.(*BackendError)
	return ok
}

// SaveError is returned when a downloaded payload cannot be written to disk.
type SaveError struct {
	Filename string
	Err      error
}

// Error implements the error interface.
func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Filename, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *SaveError) Is(target error) bool {
	_, ok := target.(*SaveError)
	return ok
}

// UserMessage returns the part of err that is shown to the user after the failure label.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Message
	}

	var clipboardErr *ClipboardAccessError
	if errors.As(err, &clipboardErr) && clipboardErr.Err != nil {
		return clipboardErr.Err.Error()
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) && transportErr.Err != nil {
		return transportErr.Err.Error()
	}

	var saveErr *SaveError
	if errors.As(err, &saveErr) && saveErr.Err != nil {
		return saveErr.Err.Error()
	}

	return err.Error()
}

// Kind returns a short label for err, used as a metric label and report tag.
func Kind(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrBusy):
		return "busy"
	case errors.Is(err, &ValidationError{}):
		return "validation_error"
	case errors.Is(err, &ClipboardAccessError{}):
		return "clipboard_error"
	case errors.Is(err, &BackendError{}):
		return "backend_error"
	case errors.Is(err, &TransportError{}):
		return "transport_error"
	case errors.Is(err, &SaveError{}):
		return "save_error"
	default:
		return "error"
	}
}
