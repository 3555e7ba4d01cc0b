package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

// BackendResponse is what the fake backend answers to an extraction request
type BackendResponse struct {
	Status             int
	ContentType        string
	ContentDisposition string
	Body               []byte
}

// SubtitleResponse builds a 200 response carrying a subtitle file
func SubtitleResponse(body []byte, contentType, filename string) BackendResponse {
	resp := BackendResponse{Status: http.StatusOK, ContentType: contentType, Body: body}
	if filename != "" {
		resp.ContentDisposition = `attachment; filename="` + filename + `"`
	}
	return resp
}

// ErrorResponse builds a JSON failure response as the extraction backend sends them
func ErrorResponse(status int, message string) BackendResponse {
	body, _ := json.Marshal(map[string]string{"error": message})
	return BackendResponse{Status: status, ContentType: "application/json", Body: body}
}

// Backend is an httptest server standing in for the extraction backend.
// It records every decoded request it receives.
// This is a test helper and should not be used in production code.
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []models.ExtractionRequest
	respond  func(models.ExtractionRequest) BackendResponse
	block    chan struct{}
}

// NewBackend starts a fake backend answering every request with respond
func NewBackend(respond func(models.ExtractionRequest) BackendResponse) *Backend {
	b := &Backend{respond: respond}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

// NewStaticBackend starts a fake backend answering every request with resp
func NewStaticBackend(resp BackendResponse) *Backend {
	return NewBackend(func(models.ExtractionRequest) BackendResponse { return resp })
}

// Hold makes the backend wait for Release before answering
func (b *Backend) Hold() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.block = make(chan struct{})
}

// Release lets held requests through
func (b *Backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.block != nil {
		close(b.block)
		b.block = nil
	}
}

// Requests returns a copy of the requests received so far
func (b *Backend) Requests() []models.ExtractionRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.ExtractionRequest(nil), b.requests...)
}

// RequestCount returns how many extraction requests were received
func (b *Backend) RequestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/api/download-subtitle" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	raw, _ := io.ReadAll(r.Body)
	var req models.ExtractionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.requests = append(b.requests, req)
	block := b.block
	b.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-r.Context().Done():
			return
		}
	}

	resp := b.respond(req)
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	if resp.ContentDisposition != "" {
		w.Header().Set("Content-Disposition", resp.ContentDisposition)
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(resp.Body)
}
