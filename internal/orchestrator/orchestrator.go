// Package orchestrator drives one subtitle request from user input to a saved file,
// reporting every step to a status presenter.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/failsafe-go/failsafe-go/bulkhead"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Belphemur/SubtitleFetcher/internal/apperrors"
	"github.com/Belphemur/SubtitleFetcher/internal/clipboard"
	"github.com/Belphemur/SubtitleFetcher/internal/config"
	"github.com/Belphemur/SubtitleFetcher/internal/emitter"
	"github.com/Belphemur/SubtitleFetcher/internal/metrics"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
	"github.com/Belphemur/SubtitleFetcher/internal/reporting"
	"github.com/Belphemur/SubtitleFetcher/internal/status"
	"github.com/Belphemur/SubtitleFetcher/internal/validator"
)

// Extractor fetches subtitles from the backend. client.Client satisfies it.
type Extractor interface {
	FetchSubtitle(ctx context.Context, req models.ExtractionRequest) (*models.ExtractionResult, error)
}

// Selection holds the user's subtitle type and format choice. Zero values mean the defaults.
type Selection struct {
	SubtitleType models.SubtitleType
	Format       models.Format
}

// Attempt is the result of one Submit or PasteAndSubmit call
type Attempt struct {
	RequestID string
	Input     string // input value after the attempt, as the user would see it
	State     State  // terminal state, or the current state when rejected as busy
	SavedPath string // set on success
	Err       error  // nil on success
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithClipboard sets the clipboard used by PasteAndSubmit
func WithClipboard(r clipboard.Reader) Option {
	return func(o *Orchestrator) { o.clipboard = r }
}

// WithReporter sets where unexpected failures are reported
func WithReporter(r reporting.Reporter) Option {
	return func(o *Orchestrator) { o.reporter = r }
}

// WithLogger replaces the process logger
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// Orchestrator runs the validate, request, save and report flow.
// At most one attempt runs at a time; overlapping calls get apperrors.ErrBusy.
type Orchestrator struct {
	extractor Extractor
	presenter status.Presenter
	emitter   emitter.Emitter
	clipboard clipboard.Reader
	reporter  reporting.Reporter
	logger    zerolog.Logger
	guard     bulkhead.Bulkhead[any]

	mu    sync.Mutex
	input string
	state State
}

// New creates an Orchestrator. The system clipboard and a no-op reporter are used
// unless overridden.
func New(extractor Extractor, presenter status.Presenter, em emitter.Emitter, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		extractor: extractor,
		presenter: presenter,
		emitter:   em,
		clipboard: clipboard.SystemReader{},
		reporter:  reporting.NopReporter{},
		logger:    config.GetLogger(),
		guard:     bulkhead.New[any](1),
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current state
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Input returns the current input value
func (o *Orchestrator) Input() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.input
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) setInput(v string) {
	o.mu.Lock()
	o.input = v
	o.mu.Unlock()
}

// Submit validates input, asks the backend for subtitles and saves the result
func (o *Orchestrator) Submit(ctx context.Context, input string, sel Selection) Attempt {
	if !o.guard.TryAcquirePermit() {
		return o.rejectBusy(input)
	}
	defer o.guard.ReleasePermit()

	o.setInput(input)
	return o.run(ctx, uuid.NewString(), input, sel)
}

// PasteAndSubmit reads the clipboard, makes its text the new input and submits it.
// A clipboard failure is reported without validating or contacting the backend.
func (o *Orchestrator) PasteAndSubmit(ctx context.Context, sel Selection) Attempt {
	if !o.guard.TryAcquirePermit() {
		return o.rejectBusy(o.Input())
	}
	defer o.guard.ReleasePermit()

	requestID := uuid.NewString()
	logger := o.logger.With().Str("request_id", requestID).Logger()

	text, err := o.clipboard.ReadText(ctx)
	if err == nil && strings.TrimSpace(text) == "" {
		err = apperrors.ErrEmptyClipboard
	}
	if err != nil {
		metrics.ClipboardReadsTotal.WithLabelValues("error").Inc()
		clipErr := &apperrors.ClipboardAccessError{Err: err}
		logger.Warn().Err(err).Msg("Failed to read clipboard")
		o.presenter.Show(models.SeverityError, ClipboardFailurePrefix+apperrors.UserMessage(clipErr))
		o.setState(StateError)
		return Attempt{RequestID: requestID, Input: o.Input(), State: StateError, Err: clipErr}
	}

	metrics.ClipboardReadsTotal.WithLabelValues("success").Inc()
	logger.Debug().Int("length", len(text)).Msg("Read video URL from clipboard")

	o.setInput(text)
	return o.run(ctx, requestID, text, sel)
}

func (o *Orchestrator) rejectBusy(input string) Attempt {
	metrics.SubtitleRequestsTotal.WithLabelValues(apperrors.Kind(apperrors.ErrBusy)).Inc()
	o.logger.Debug().Msg("Rejecting submission, another request is in flight")
	return Attempt{Input: input, State: o.State(), Err: apperrors.ErrBusy}
}

func (o *Orchestrator) run(ctx context.Context, requestID, input string, sel Selection) Attempt {
	started := time.Now()
	logger := o.logger.With().Str("request_id", requestID).Logger()
	attempt := Attempt{RequestID: requestID, Input: input}

	o.setState(StateValidating)
	videoURL := strings.TrimSpace(input)
	if !validator.IsValid(videoURL) {
		logger.Info().Str("input", videoURL).Msg("Rejected invalid video URL")
		o.presenter.Show(models.SeverityError, MessageInvalidURL)
		return o.finish(attempt, started, &apperrors.ValidationError{Input: videoURL})
	}

	req := models.ExtractionRequest{
		VideoURL:     videoURL,
		SubtitleType: sel.SubtitleType,
		Format:       sel.Format,
	}
	if req.SubtitleType == "" {
		req.SubtitleType = models.SubtitleTypeAuto
	}
	if req.Format == "" {
		req.Format = models.FormatTXT
	}

	o.setState(StateLoading)
	o.presenter.Show(models.SeverityLoading, MessageLoading)

	logger.Info().
		Str("url", req.VideoURL).
		Str("subtitleType", req.SubtitleType.String()).
		Str("format", req.Format.String()).
		Msg("Submitting subtitle request")

	outcome := models.OutcomeFromResult(o.extractor.FetchSubtitle(ctx, req))
	if failure, failed := outcome.Failure(); failed {
		err := failure.Err
		if err == nil {
			err = errors.New(failure.Message)
		}
		o.presenter.Show(models.SeverityError, FailurePrefix+failure.Message)
		return o.finish(attempt, started, err)
	}

	success, _ := outcome.Success()
	path, err := o.emitter.Save(success.Payload, success.SuggestedFilename)
	if err != nil {
		o.presenter.Show(models.SeverityError, FailurePrefix+apperrors.UserMessage(err))
		return o.finish(attempt, started, err)
	}

	o.presenter.Show(models.SeveritySuccess, MessageSuccess)
	attempt.SavedPath = path
	return o.finish(attempt, started, nil)
}

// finish records the terminal state, metrics and logs of an attempt
func (o *Orchestrator) finish(attempt Attempt, started time.Time, err error) Attempt {
	kind := apperrors.Kind(err)
	metrics.ObserveRequest(kind, started)

	logger := o.logger.With().Str("request_id", attempt.RequestID).Logger()

	if err == nil {
		attempt.State = StateSuccess
		logger.Info().Str("path", attempt.SavedPath).Dur("duration", time.Since(started)).Msg("Subtitle saved")
	} else {
		attempt.State = StateError
		attempt.Err = err
		switch {
		case errors.Is(err, context.Canceled):
			logger.Info().Str("kind", kind).Msg("Subtitle request canceled")
		case kind == "transport_error" || kind == "save_error" || kind == "error":
			logger.Error().Err(err).Str("kind", kind).Msg("Subtitle request failed")
			o.reporter.CaptureError(err, map[string]string{"kind": kind, "request_id": attempt.RequestID})
		case kind == "validation_error":
		default:
			logger.Warn().Err(err).Str("kind", kind).Msg("Subtitle request failed")
		}
	}

	o.setState(attempt.State)
	return attempt
}
