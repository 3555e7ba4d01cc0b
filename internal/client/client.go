package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Belphemur/SubtitleFetcher/internal/cache"
	"github.com/Belphemur/SubtitleFetcher/internal/config"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

// extractPath is the backend route that performs the subtitle extraction
const extractPath = "/api/download-subtitle"

// Client defines the interface for talking to the subtitle extraction backend
type Client interface {
	// FetchSubtitle performs one extraction request, without retries.
	// Errors are *apperrors.TransportError or *apperrors.BackendError.
	FetchSubtitle(ctx context.Context, req models.ExtractionRequest) (*models.ExtractionResult, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	responses  *responseCache
}

// NewClient creates a new client instance with proxy, timeout and response cache
// configuration taken from cfg
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	timeout := 30 * time.Second
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to keep its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	backendURL := cfg.BackendURL
	if backendURL == "" {
		backendURL = config.DefaultBackendURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newCompressionTransport(baseTransport),
		},
		endpoint:  strings.TrimRight(backendURL, "/") + extractPath,
		userAgent: userAgent,
		responses: newResponseCache(cfg),
	}
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	return c.responses.Close()
}

// zerologCacheLogger forwards cache errors to the process logger
type zerologCacheLogger struct{}

func (zerologCacheLogger) Error(msg string, err error) {
	logger := config.GetLogger()
	logger.Error().Err(err).Msg(msg)
}

var _ cache.Logger = zerologCacheLogger{}
