package client

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Belphemur/SubtitleFetcher/internal/cache"
	"github.com/Belphemur/SubtitleFetcher/internal/config"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
	"github.com/Belphemur/SubtitleFetcher/internal/validator"
)

// cacheGroup labels the response cache metrics
const cacheGroup = "responses"

// cachedResponse is the serialized form of a successful extraction
type cachedResponse struct {
	Text        string `json:"text,omitempty"`
	Data        []byte `json:"data,omitempty"`
	IsText      bool   `json:"isText"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// responseCache stores successful extractions keyed by video, subtitle type and format.
// A nil *responseCache is valid and caches nothing.
type responseCache struct {
	store cache.Cache
}

func newResponseCache(cfg *config.Config) *responseCache {
	if !cfg.Cache.Enabled {
		return nil
	}
	logger := config.GetLogger()

	ttl := time.Hour
	if cfg.Cache.TTL != "" {
		if parsed, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			logger.Warn().Err(err).Str("ttl", cfg.Cache.TTL).Msg("Invalid cache TTL, using default 1h")
		} else {
			ttl = parsed
		}
	}

	size := cfg.Cache.Size
	if size <= 0 {
		size = 100
	}

	provider := cfg.Cache.Provider
	if provider == "" {
		provider = "memory"
	}

	store, err := cache.New(provider, cache.ProviderConfig{
		Size:          size,
		TTL:           ttl,
		Logger:        zerologCacheLogger{},
		RedisAddress:  cfg.Cache.RedisAddress,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
		Group:         cacheGroup,
	})
	if err != nil {
		logger.Warn().Err(err).Str("provider", provider).Msg("Failed to create response cache, continuing without cache")
		return nil
	}

	logger.Info().Str("provider", provider).Int("size", size).Dur("ttl", ttl).Msg("Response cache enabled")
	return &responseCache{store: store}
}

// cacheKey identifies a response: videoID|type|format, falling back to the URL when no
// video id can be extracted
func cacheKey(req models.ExtractionRequest) string {
	id, ok := validator.ExtractVideoID(req.VideoURL)
	if !ok {
		id = strings.TrimSpace(req.VideoURL)
	}
	return id + "|" + req.SubtitleType.String() + "|" + req.Format.String()
}

func (c *responseCache) get(req models.ExtractionRequest) (*models.ExtractionResult, bool) {
	if c == nil {
		return nil, false
	}
	raw, ok := c.store.Get(cacheKey(req))
	if !ok {
		return nil, false
	}

	var entry cachedResponse
	if err := json.Unmarshal(raw, &entry); err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Dropping unreadable cache entry")
		c.store.Delete(cacheKey(req))
		return nil, false
	}

	payload := models.NewBinaryPayload(entry.Data)
	if entry.IsText {
		payload = models.NewTextPayload(entry.Text)
	}
	return &models.ExtractionResult{
		Payload:           payload,
		SuggestedFilename: entry.Filename,
		ContentType:       entry.ContentType,
		FromCache:         true,
	}, true
}

func (c *responseCache) put(req models.ExtractionRequest, result *models.ExtractionResult) {
	if c == nil || result == nil {
		return
	}
	entry := cachedResponse{
		IsText:      result.Payload.IsText(),
		Filename:    result.SuggestedFilename,
		ContentType: result.ContentType,
	}
	if text, ok := result.Payload.Text(); ok {
		entry.Text = text
	} else {
		entry.Data = result.Payload.Bytes()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Failed to encode cache entry")
		return
	}
	c.store.Set(cacheKey(req), raw)
}

func (c *responseCache) Close() error {
	if c == nil {
		return nil
	}
	return c.store.Close()
}
