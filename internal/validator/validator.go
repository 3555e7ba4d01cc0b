// Package validator holds the syntactic checks applied to a video URL before any
// request is sent. A valid URL is not guaranteed to point at a real public video.
package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var youTubeURLPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

// IsValid reports whether candidate looks like a YouTube video URL
func IsValid(candidate string) bool {
	if candidate == "" {
		return false
	}
	return youTubeURLPattern.MatchString(candidate)
}

// ExtractVideoID returns the video id carried by a YouTube URL.
// youtu.be/<id> uses the first path segment, youtube.com uses the v query parameter
// and falls back to /shorts/<id>, /embed/<id> and /live/<id>.
func ExtractVideoID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if !IsValid(rawURL) {
		return "", false
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })

	if host == "youtu.be" {
		if len(segments) == 0 {
			return "", false
		}
		return segments[0], true
	}

	if id := parsed.Query().Get("v"); id != "" {
		return id, true
	}
	if len(segments) >= 2 {
		switch segments[0] {
		case "shorts", "embed", "live":
			return segments[1], true
		}
	}
	return "", false
}
