package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samosastudio/samosa/internal/providers"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
		wantErr  error
	}{
		{
			name:     "base64 image",
			status:   http.StatusOK,
			body:     `{"created":1,"data":[{"b64_json":"cG5n"}]}`,
			expected: "data:image/png;base64,cG5n",
		},
		{
			name:     "hosted image",
			status:   http.StatusOK,
			body:     `{"created":1,"data":[{"url":"https://x.com/a.png"}]}`,
			expected: "https://x.com/a.png",
		},
		{
			name:    "empty data",
			status:  http.StatusOK,
			body:    `{"created":1,"data":[]}`,
			wantErr: providers.ErrNoImageURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/images/generations" {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}
				var req map[string]any
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatal(err)
				}
				if req["model"] != "x/flux2-klein" || req["prompt"] != "a samosa" {
					t.Errorf("Unexpected request: %v", req)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := New(server.URL+"/", server.Client()).Generate(context.Background(), providers.Config{Model: "x/flux2-klein", Prompt: "a samosa"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
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

func TestGenerateStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(server.URL, server.Client()).Generate(context.Background(), providers.Config{Model: "missing", Prompt: "a samosa"})
	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 StatusError, got %v", err)
	}
}
