package client

import (
	"testing"

	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		present  bool
	}{
		{name: "attachment", header: `attachment; filename="video.srt"`, expected: "video.srt", present: true},
		{name: "no attachment prefix", header: `filename="clip.vtt"`, expected: "clip.vtt", present: true},
		{name: "spaces kept", header: `attachment; filename="My Video (2024).txt"`, expected: "My Video (2024).txt", present: true},
		{name: "unicode", header: `attachment; filename="字幕.srt"`, expected: "字幕.srt", present: true},
		{name: "decomposed accents normalized", header: "attachment; filename=\"Cafe\u0301.txt\"", expected: "Caf\u00e9.txt", present: true},
		{name: "directories stripped", header: `attachment; filename="../../etc/passwd"`, expected: "passwd", present: true},
		{name: "windows directories stripped", header: `attachment; filename="C:\temp\video.srt"`, expected: "video.srt", present: true},
		{name: "empty header", header: "", present: false},
		{name: "inline without filename", header: "inline", present: false},
		{name: "unquoted filename", header: "attachment; filename=video.srt", present: false},
		{name: "empty quoted value", header: `attachment; filename=""`, present: false},
		{name: "stops at closing quote", header: `attachment; filename="video.srt"; size="12"`, expected: "video.srt", present: true},
		{name: "only dots", header: `attachment; filename=".."`, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFilename(tt.header).Get()
			if ok != tt.present {
				t.Fatalf("ParseFilename(%q) present = %v, want %v (value %q)", tt.header, ok, tt.present, got)
			}
			if ok && got != tt.expected {
				t.Errorf("ParseFilename(%q) = %q, want %q", tt.header, got, tt.expected)
			}
		})
	}
}

func TestDefaultFilename(t *testing.T) {
	for _, f := range models.AllFormats {
		if got := DefaultFilename(f); got != "subtitle."+string(f) {
			t.Errorf("DefaultFilename(%s) = %q", f, got)
		}
	}
}
