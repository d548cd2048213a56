package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/samosastudio/samosa/internal/providers"
)

func TestImageFromParts(t *testing.T) {
	tests := []struct {
		name     string
		parts    []genai.Part
		expected string
		wantErr  bool
	}{
		{
			name:     "inline image wins over text",
			parts:    []genai.Part{genai.Text("see https://x.com/a.png"), genai.Blob{MIMEType: "image/png", Data: []byte("png")}},
			expected: "data:image/png;base64,cG5n",
		},
		{
			name:     "link in text",
			parts:    []genai.Part{genai.Text("Here you go: https://x.com/a.webp")},
			expected: "https://x.com/a.webp",
		},
		{
			name:    "empty blob and prose",
			parts:   []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("no image today")},
			wantErr: true,
		},
		{
			name:    "no parts",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := imageFromParts(tt.parts)
			if tt.wantErr {
				if !errors.Is(err, providers.ErrNoImageURL) {
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

func TestGenerateRequiresAPIKey(t *testing.T) {
	_, err := New("").Generate(context.Background(), providers.Config{Model: "gemini-2.0-flash", Prompt: "a samosa"})
	if err == nil {
		t.Fatal("Expected error without api key")
	}
}
