package validator

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"full watch URL", "https://www.youtube.com/watch?v=abc123", true},
		{"short host without scheme", "youtu.be/abc123", true},
		{"http without www", "http://youtube.com/watch?v=x", true},
		{"upper case", "HTTPS://WWW.YOUTUBE.COM/watch?v=abc", true},
		{"shorts path", "https://youtube.com/shorts/abc", true},
		{"empty", "", false},
		{"ftp scheme", "ftp://youtube.com/x", false},
		{"not a url", "notaurl", false},
		{"host only", "https://youtube.com", false},
		{"host with bare slash", "https://youtube.com/", false},
		{"other host", "https://vimeo.com/123", false},
		{"lookalike host", "https://notyoutube.com/watch?v=1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"https://www.youtube.com/watch?v=abc123", "abc123", true},
		{"youtu.be/abc123", "abc123", true},
		{"https://youtu.be/abc123?t=42", "abc123", true},
		{"https://www.youtube.com/shorts/xyz", "xyz", true},
		{"https://www.youtube.com/embed/e1?autoplay=1", "e1", true},
		{"https://www.youtube.com/playlist?list=PL1", "", false},
		{"notaurl", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.input)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
