package models

// Severity is the kind of status notification shown to the user
type Severity string

const (
	// SeverityLoading means a request is in flight
	SeverityLoading Severity = "loading"

	// SeveritySuccess means the subtitle file was saved
	SeveritySuccess Severity = "success"

	// SeverityError means the attempt failed
	SeverityError Severity = "error"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}

// IsTerminal returns true if no further notification follows for the same attempt
func (s Severity) IsTerminal() bool {
	return s == SeveritySuccess || s == SeverityError
}

// Notification is the single status message shown to the user
type Notification struct {
	Severity Severity
	Message  string
}
