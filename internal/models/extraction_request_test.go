package models

import (
	"encoding/json"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"txt", FormatTXT, false},
		{"SRT", FormatSRT, false},
		{" vtt ", FormatVTT, false},
		{"", FormatTXT, false},
		{"ass", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got format %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseSubtitleType(t *testing.T) {
	tests := []struct {
		input    string
		expected SubtitleType
		wantErr  bool
	}{
		{"auto", SubtitleTypeAuto, false},
		{"Manual", SubtitleTypeManual, false},
		{"", SubtitleTypeAuto, false},
		{"forced", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSubtitleType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSubtitleType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseSubtitleType(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat_IsText(t *testing.T) {
	if !FormatTXT.IsText() {
		t.Error("Expected txt to be a text format")
	}
	for _, f := range []Format{FormatSRT, FormatVTT} {
		if f.IsText() {
			t.Errorf("Expected %s to be a binary format", f)
		}
	}
}

func TestExtractionRequest_WireShape(t *testing.T) {
	req := ExtractionRequest{
		VideoURL:     "https://youtu.be/abc123",
		SubtitleType: SubtitleTypeAuto,
		Format:       FormatSRT,
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"videoUrl":"https://youtu.be/abc123","subtitleType":"auto","format":"srt"}`
	if string(data) != expected {
		t.Errorf("Expected body %s, got %s", expected, string(data))
	}
}
