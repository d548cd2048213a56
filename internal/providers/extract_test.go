package providers

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
		wantErr  bool
	}{
		{
			name:     "url embedded in text",
			content:  `"here is https://x.com/img.png more text"`,
			expected: "https://x.com/img.png",
		},
		{
			name:     "first match wins",
			content:  `"https://a.com/1.webp and https://b.com/2.jpg"`,
			expected: "https://a.com/1.webp",
		},
		{
			name:     "extension match is case insensitive",
			content:  `"Result: https://cdn.example.com/out/IMAGE.JPEG"`,
			expected: "https://cdn.example.com/out/IMAGE.JPEG",
		},
		{
			name:     "whole string used when it is a url without image extension",
			content:  `"  https://replicate.delivery/pbxt/abc?sig=1  "`,
			expected: "https://replicate.delivery/pbxt/abc?sig=1",
		},
		{
			name:    "prose without url",
			content: `"Sorry, I cannot generate that image."`,
			wantErr: true,
		},
		{
			name:    "empty string",
			content: `""`,
			wantErr: true,
		},
		{
			name:     "structured url",
			content:  `{"url": "https://x.com/a.jpg"}`,
			expected: "https://x.com/a.jpg",
		},
		{
			name:     "url beats image_url",
			content:  `{"image_url": "https://x.com/b.jpg", "url": "https://x.com/a.jpg"}`,
			expected: "https://x.com/a.jpg",
		},
		{
			name:     "image_url beats output",
			content:  `{"output": "https://x.com/c.png", "image_url": "https://x.com/b.jpg"}`,
			expected: "https://x.com/b.jpg",
		},
		{
			name:     "empty url falls through",
			content:  `{"url": "", "output": "https://x.com/c.png"}`,
			expected: "https://x.com/c.png",
		},
		{
			name:     "nested image_url object",
			content:  `{"image_url": {"url": "https://x.com/nested.png"}}`,
			expected: "https://x.com/nested.png",
		},
		{
			name:     "output list",
			content:  `{"output": ["https://x.com/first.webp", "https://x.com/second.webp"]}`,
			expected: "https://x.com/first.webp",
		},
		{
			name:     "multi part content",
			content:  `[{"type": "text", "text": "done"}, {"type": "image_url", "image_url": {"url": "https://x.com/part.png"}}]`,
			expected: "https://x.com/part.png",
		},
		{
			name:    "object without known fields",
			content: `{"status": "succeeded"}`,
			wantErr: true,
		},
		{
			name:    "null content",
			content: `null`,
			wantErr: true,
		},
		{
			name:    "missing content",
			content: ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveImageURL(json.RawMessage(tt.content))
			if tt.wantErr {
				if !errors.Is(err, ErrNoImageURL) {
					t.Fatalf("Expected ErrNoImageURL, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFromTextDataURL(t *testing.T) {
	got, err := FromText("data:image/png;base64,iVBORw0KGgo=")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "data:image/png;base64,iVBORw0KGgo=" {
		t.Errorf("Unexpected url: %s", got)
	}

	if _, err := FromText("ftp://x.com/a"); err == nil {
		t.Error("Expected error for unsupported scheme")
	}
}
