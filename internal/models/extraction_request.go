package models

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// SubtitleType selects which subtitle track the backend extracts
type SubtitleType string

const (
	// SubtitleTypeAuto asks for automatically generated captions
	SubtitleTypeAuto SubtitleType = "auto"

	// SubtitleTypeManual asks for captions uploaded by the video owner
	SubtitleTypeManual SubtitleType = "manual"
)

// Format is the output format of the downloaded subtitle file
type Format string

const (
	// FormatTXT is plain text without timing information
	FormatTXT Format = "txt"

	// FormatSRT is SubRip
	FormatSRT Format = "srt"

	// FormatVTT is WebVTT
	FormatVTT Format = "vtt"
)

// AllSubtitleTypes lists the subtitle types in display order
var AllSubtitleTypes = []SubtitleType{SubtitleTypeAuto, SubtitleTypeManual}

// AllFormats lists the output formats in display order
var AllFormats = []Format{FormatTXT, FormatSRT, FormatVTT}

// String returns the string representation of SubtitleType
func (t SubtitleType) String() string {
	return string(t)
}

// Description returns a short human readable label
func (t SubtitleType) Description() string {
	switch t {
	case SubtitleTypeAuto:
		return "Auto-generated captions"
	case SubtitleTypeManual:
		return "Uploaded captions"
	default:
		return string(t)
	}
}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension without the leading dot
func (f Format) Extension() string {
	return string(f)
}

// IsText reports whether payloads of this format are read as human readable text.
// Every other format is kept byte for byte.
func (f Format) IsText() bool {
	return f == FormatTXT
}

// Description returns a short human readable label
func (f Format) Description() string {
	switch f {
	case FormatTXT:
		return "Plain text transcript"
	case FormatSRT:
		return "SubRip subtitles"
	case FormatVTT:
		return "WebVTT subtitles"
	default:
		return string(f)
	}
}

// ParseSubtitleType parses a subtitle type, case-insensitively. An empty value yields auto.
func ParseSubtitleType(value string) (SubtitleType, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return SubtitleTypeAuto, nil
	}
	t := SubtitleType(value)
	if !lo.Contains(AllSubtitleTypes, t) {
		return "", fmt.Errorf("unknown subtitle type %q (expected one of %s)", value, strings.Join(lo.Map(AllSubtitleTypes, func(s SubtitleType, _ int) string { return s.String() }), ", "))
	}
	return t, nil
}

// ParseFormat parses an output format, case-insensitively. An empty value yields txt.
func ParseFormat(value string) (Format, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return FormatTXT, nil
	}
	f := Format(value)
	if !lo.Contains(AllFormats, f) {
		return "", fmt.Errorf("unknown format %q (expected one of %s)", value, strings.Join(lo.Map(AllFormats, func(f Format, _ int) string { return f.String() }), ", "))
	}
	return f, nil
}

// ExtractionRequest is the body sent to the extraction backend.
// It is built once per submission and not modified after being sent.
type ExtractionRequest struct {
	VideoURL     string       `json:"videoUrl"`
	SubtitleType SubtitleType `json:"subtitleType"`
	Format       Format       `json:"format"`
}
