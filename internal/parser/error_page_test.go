package parser

import "testing"

func TestErrorPageMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		body        string
		contentType string
		expected    string
		ok          bool
	}{
		{
			name:        "h1 preferred over title",
			body:        "<html><head><title>502 Bad Gateway</title></head><body><h1>  Bad\n Gateway </h1></body></html>",
			contentType: "text/html",
			expected:    "Bad Gateway",
			ok:          true,
		},
		{
			name:        "title only",
			body:        "<!DOCTYPE html><html><head><title>Page Not Found</title></head><body></body></html>",
			contentType: "",
			expected:    "Page Not Found",
			ok:          true,
		},
		{
			name:        "html without heading",
			body:        "<html><body><p>nothing</p></body></html>",
			contentType: "text/html; charset=utf-8",
			ok:          false,
		},
		{
			name:        "plain text body",
			body:        "Internal Server Error",
			contentType: "text/plain",
			ok:          false,
		},
		{
			name:        "empty body",
			body:        "",
			contentType: "",
			ok:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ErrorPageMessage([]byte(tt.body), tt.contentType)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ErrorPageMessage() = (%q, %v), want (%q, %v)", got, ok, tt.expected, tt.ok)
			}
		})
	}
}
