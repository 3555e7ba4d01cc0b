package models

import (
	"github.com/samber/mo"

	"github.com/Belphemur/SubtitleFetcher/internal/apperrors"
)

// ExtractionResult is what the client returns for a successful extraction
type ExtractionResult struct {
	Payload           Payload // Text for txt, raw bytes otherwise
	SuggestedFilename string  // From Content-Disposition, or subtitle.<ext>
	ContentType       string  // Content-Type reported by the backend
	FromCache         bool    // Served from the response cache without a network call
}

// Success is the successful branch of an ExtractionOutcome
type Success struct {
	Payload           Payload
	SuggestedFilename string
}

// Failure is the failed branch of an ExtractionOutcome
type Failure struct {
	Message string // Text shown to the user after the failure label
	Err     error  // Typed error from apperrors
}

// ExtractionOutcome is either a Success or a Failure, never both
type ExtractionOutcome struct {
	value mo.Either[Failure, Success]
}

// Succeeded builds a successful outcome
func Succeeded(s Success) ExtractionOutcome {
	return ExtractionOutcome{value: mo.Right[Failure, Success](s)}
}

// Failed builds a failed outcome
func Failed(f Failure) ExtractionOutcome {
	return ExtractionOutcome{value: mo.Left[Failure, Success](f)}
}

// Success returns the successful branch
func (o ExtractionOutcome) Success() (Success, bool) {
	return o.value.Right()
}

// Failure returns the failed branch
func (o ExtractionOutcome) Failure() (Failure, bool) {
	return o.value.Left()
}

// OutcomeFromResult folds the client's (result, error) pair into an ExtractionOutcome
func OutcomeFromResult(result *ExtractionResult, err error) ExtractionOutcome {
	if err != nil {
		return Failed(Failure{Message: apperrors.UserMessage(err), Err: err})
	}
	if result == nil {
		return Failed(Failure{Message: "empty extraction result"})
	}
	return Succeeded(Success{
		Payload:           result.Payload,
		SuggestedFilename: result.SuggestedFilename,
	})
}
