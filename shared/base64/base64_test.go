package base64_test

import (
	"testing"

	"madison/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "png room photo",
			input:    "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
			expected: "image/png",
		},
		{
			name:     "jpeg gallery photo",
			input:    "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQEAYABgAAD/2wBD",
			expected: "image/jpeg",
		},
		{
			name:     "webp upload",
			input:    "data:image/webp;base64,UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA==",
			expected: "image/webp",
		},
		{
			name:     "content type with charset parameter",
			input:    "data:image/svg+xml;charset=utf-8;base64,PHN2ZyB3aWR0aD0iMTAiIGhlaWdodD0iMTAiPjwvc3ZnPg==",
			expected: "image/svg+xml;charset=utf-8",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "missing data prefix",
			input:    "image/png;base64,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "missing base64 marker",
			input:    "data:image/png,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "missing semicolon before marker",
			input:    "data:image/pngbase64,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "bare data prefix",
			input:    "data:",
			expected: "",
		},
		{
			name:     "empty content type",
			input:    "data:;base64,",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := base64.GetContentType(tt.input); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
