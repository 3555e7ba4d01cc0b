// Package reporting forwards unexpected failures to Sentry.
package reporting

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/SubtitleFetcher/internal/config"
)

// Reporter captures errors worth a look from a human.
type Reporter interface {
	CaptureError(err error, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// NewReporter returns a Sentry backed reporter, or a no-op one when no DSN is configured
// or the client cannot be initialised.
func NewReporter(cfg *config.Config) Reporter {
	if cfg == nil || cfg.Sentry.DSN == "" {
		return NopReporter{}
	}

	logger := config.GetLogger()
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		ServerName:  "subfetch",
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid Sentry configuration, error reporting disabled")
		return NopReporter{}
	}

	logger.Debug().Str("environment", cfg.Sentry.Environment).Msg("Sentry error reporting enabled")
	return &sentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}
}

type sentryReporter struct {
	hub *sentry.Hub
}

func (r *sentryReporter) CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

func (r *sentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) CaptureError(error, map[string]string) {}

func (NopReporter) Flush(time.Duration) bool { return true }
