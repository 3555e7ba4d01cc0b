package parser

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/SubtitleFetcher/internal/config"
)

// ErrorPageMessage extracts a human readable message from an HTML error page, as served
// by reverse proxies or a backend's catch-all 404 route. It prefers the first <h1>, then
// <title>. The second return value is false when body is not HTML or has neither.
func ErrorPageMessage(body []byte, contentType string) (string, bool) {
	if !looksLikeHTML(body, contentType) {
		return "", false
	}

	logger := config.GetLogger()

	reader, err := NewUTF8Reader(bytes.NewReader(body), contentType)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to detect error page charset")
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		logger.Debug().Err(err).Msg("Failed to parse error page HTML")
		return "", false
	}

	for _, selector := range []string{"h1", "title"} {
		text := collapseSpaces(doc.Find(selector).First().Text())
		if text != "" {
			return text, true
		}
	}
	return "", false
}

func looksLikeHTML(body []byte, contentType string) bool {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return true
	}
	head := strings.ToLower(string(bytes.TrimSpace(body[:min(len(body), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
