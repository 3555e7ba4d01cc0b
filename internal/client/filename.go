package client

import (
	"path"
	"regexp"
	"strings"

	"github.com/samber/mo"
	"golang.org/x/text/unicode/norm"

	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

var dispositionFilenamePattern = regexp.MustCompile(`filename="([^"]+)"`)

// ParseFilename extracts the quoted filename parameter of a Content-Disposition header.
// It returns None when the header is absent, carries no quoted filename, or the value
// reduces to nothing once directories are stripped.
func ParseFilename(header string) mo.Option[string] {
	match := dispositionFilenamePattern.FindStringSubmatch(header)
	if match == nil {
		return mo.None[string]()
	}

	name := strings.ReplaceAll(match[1], `\`, "/")
	name = strings.TrimSpace(path.Base(name))
	if name == "" || name == "." || name == ".." || name == "/" {
		return mo.None[string]()
	}

	return mo.Some(norm.NFC.String(name))
}

// DefaultFilename is used when the backend does not suggest a name: subtitle.<ext>
func DefaultFilename(format models.Format) string {
	return "subtitle." + format.Extension()
}
