package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Belphemur/SubtitleFetcher/internal/apperrors"
	"github.com/Belphemur/SubtitleFetcher/internal/config"
	"github.com/Belphemur/SubtitleFetcher/internal/models"
	"github.com/Belphemur/SubtitleFetcher/internal/parser"
)

// GenericFailureMessage is reported when the backend fails without saying why
const GenericFailureMessage = "下载字幕时出错"

// backendErrorBody is the JSON shape of a backend failure
type backendErrorBody struct {
	Error string `json:"error"`
}

// FetchSubtitle sends one extraction request to the backend
func (c *client) FetchSubtitle(ctx context.Context, req models.ExtractionRequest) (*models.ExtractionResult, error) {
	logger := config.GetLogger()

	if cached, ok := c.responses.get(req); ok {
		logger.Debug().
			Str("url", req.VideoURL).
			Str("subtitleType", req.SubtitleType.String()).
			Str("format", req.Format.String()).
			Msg("Serving subtitle from response cache")
		return cached, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &apperrors.TransportError{URL: c.endpoint, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	logger.Info().
		Str("endpoint", c.endpoint).
		Str("url", req.VideoURL).
		Str("subtitleType", req.SubtitleType.String()).
		Str("format", req.Format.String()).
		Msg("Requesting subtitle extraction")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &apperrors.TransportError{URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.TransportError{URL: c.endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	contentType := resp.Header.Get("Content-Type")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := backendFailureMessage(content, contentType)
		logger.Warn().
			Int("status", resp.StatusCode).
			Str("message", message).
			Dur("duration", time.Since(start)).
			Msg("Backend rejected extraction request")
		return nil, &apperrors.BackendError{StatusCode: resp.StatusCode, Message: message}
	}

	filename := ParseFilename(resp.Header.Get("Content-Disposition")).OrElse(DefaultFilename(req.Format))
	result := &models.ExtractionResult{
		Payload:           buildPayload(req.Format, content, contentType),
		SuggestedFilename: filename,
		ContentType:       contentType,
	}

	logger.Info().
		Str("filename", filename).
		Int("size", result.Payload.Len()).
		Dur("duration", time.Since(start)).
		Msg("Subtitle extracted")

	c.responses.put(req, result)
	return result, nil
}

// buildPayload decides the payload variant from the requested format
func buildPayload(format models.Format, content []byte, contentType string) models.Payload {
	if !format.IsText() {
		return models.NewBinaryPayload(content)
	}

	text, err := parser.DecodeText(content, contentType)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("contentType", contentType).Msg("Failed to decode subtitle text, keeping raw bytes")
		return models.NewTextPayload(string(content))
	}
	return models.NewTextPayload(text)
}

// backendFailureMessage reads the reason out of a failed response: the JSON error field,
// then the heading of an HTML error page, then the generic message.
func backendFailureMessage(content []byte, contentType string) string {
	var payload backendErrorBody
	if err := json.Unmarshal(content, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		return GenericFailureMessage
	}

	if msg, ok := parser.ErrorPageMessage(content, contentType); ok {
		return msg
	}
	return GenericFailureMessage
}
