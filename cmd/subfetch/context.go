package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/Belphemur/SubtitleFetcher/internal/client"
	"github.com/Belphemur/SubtitleFetcher/internal/clipboard"
	"github.com/Belphemur/SubtitleFetcher/internal/config"
	"github.com/Belphemur/SubtitleFetcher/internal/emitter"
	"github.com/Belphemur/SubtitleFetcher/internal/metrics"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
	"github.com/Belphemur/SubtitleFetcher/internal/orchestrator"
	"github.com/Belphemur/SubtitleFetcher/internal/reporting"
	"github.com/Belphemur/SubtitleFetcher/internal/status"
)

const reporterFlushTimeout = 2 * time.Second

// shownError marks a failure the status presenter already displayed
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }

func (e *shownError) Unwrap() error { return e.err }

// commandContext carries flag values and the collaborators shared by the subcommands.
// Tests replace fs and clipboard.
type commandContext struct {
	backendFlag   string
	typeFlag      string
	formatFlag    string
	outFlag       string
	overwriteFlag bool
	metricsFlag   bool

	fs        afero.Fs
	clipboard clipboard.Reader
}

func newCommandContext() *commandContext {
	return &commandContext{
		fs:        afero.NewOsFs(),
		clipboard: clipboard.SystemReader{},
	}
}

// effectiveConfig applies the command line flags on top of the loaded configuration
func (c *commandContext) effectiveConfig() config.Config {
	var cfg config.Config
	if loaded := config.GetConfig(); loaded != nil {
		cfg = *loaded
	}
	if c.backendFlag != "" {
		cfg.BackendURL = c.backendFlag
	}
	if c.outFlag != "" {
		cfg.OutputDir = c.outFlag
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if c.overwriteFlag {
		cfg.Overwrite = true
	}
	if c.metricsFlag {
		cfg.Metrics.Enabled = true
	}
	return cfg
}

func (c *commandContext) selection(cfg config.Config) (orchestrator.Selection, error) {
	typeValue := c.typeFlag
	if typeValue == "" {
		typeValue = cfg.DefaultSubtitleType
	}
	subtitleType, err := models.ParseSubtitleType(typeValue)
	if err != nil {
		return orchestrator.Selection{}, err
	}

	formatValue := c.formatFlag
	if formatValue == "" {
		formatValue = cfg.DefaultFormat
	}
	format, err := models.ParseFormat(formatValue)
	if err != nil {
		return orchestrator.Selection{}, err
	}

	return orchestrator.Selection{SubtitleType: subtitleType, Format: format}, nil
}

// run wires one orchestrator for the lifetime of a command and hands it to submit
func (c *commandContext) run(ctx context.Context, out io.Writer, submit func(context.Context, *orchestrator.Orchestrator, orchestrator.Selection) orchestrator.Attempt) error {
	cfg := c.effectiveConfig()
	logger := config.GetLogger()

	sel, err := c.selection(cfg)
	if err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		stopMetrics := metrics.Serve(metrics.NewHTTPServer(cfg.Metrics.Address, cfg.Metrics.Port))
		defer stopMetrics()
	}

	reporter := reporting.NewReporter(&cfg)
	defer reporter.Flush(reporterFlushTimeout)

	extractor := client.NewClient(&cfg)
	defer func() {
		if err := extractor.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close client")
		}
	}()

	logger.Debug().
		Str("backend_url", cfg.BackendURL).
		Str("output_dir", cfg.OutputDir).
		Str("subtitleType", sel.SubtitleType.String()).
		Str("format", sel.Format.String()).
		Msg("Starting subtitle fetch")

	o := orchestrator.New(
		extractor,
		status.MultiPresenter{status.NewConsolePresenter(out), status.NewSlot()},
		emitter.NewFileEmitter(c.fs, cfg.OutputDir, cfg.Overwrite),
		orchestrator.WithClipboard(c.clipboard),
		orchestrator.WithReporter(reporter),
	)

	attempt := submit(ctx, o, sel)
	if attempt.Err != nil {
		return &shownError{err: attempt.Err}
	}
	fmt.Fprintln(out, strings.TrimSpace(attempt.SavedPath))
	return nil
}
