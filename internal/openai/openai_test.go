package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samosastudio/samosa/internal/providers"
)

func TestGenerateSendsChatRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Unexpected Authorization header: %s", got)
		}
		if got := r.Header.Get("customerId"); got != "studio@example.com" {
			t.Errorf("Unexpected customerId header: %s", got)
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "flux" {
			t.Errorf("Expected model flux, got %s", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "a samosa" {
			t.Errorf("Unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"here is https://x.com/img.png more text"}}]}`))
	}))
	defer server.Close()

	o := New(server.URL, "secret", "studio@example.com", server.Client())
	got, err := o.Generate(context.Background(), providers.Config{Model: "flux", Prompt: "a samosa"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "https://x.com/img.png" {
		t.Errorf("Expected https://x.com/img.png, got %s", got)
	}
}

func TestGenerateUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	o := New(server.URL, "secret", "", server.Client())
	_, err := o.Generate(context.Background(), providers.Config{Model: "flux", Prompt: "a samosa"})

	var statusErr *providers.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != "overloaded\n" {
		t.Errorf("Unexpected body: %q", statusErr.Body)
	}
}

func TestGenerateNoImage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no choices", body: `{"choices":[]}`},
		{name: "prose content", body: `{"choices":[{"message":{"content":"I can't do that"}}]}`},
		{name: "unknown structure", body: `{"choices":[{"message":{"content":{"status":"ok"}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			o := New(server.URL, "secret", "", server.Client())
			_, err := o.Generate(context.Background(), providers.Config{Prompt: "a samosa"})
			if !errors.Is(err, providers.ErrNoImageURL) {
				t.Errorf("Expected ErrNoImageURL, got %v", err)
			}
		})
	}
}

func TestGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	o := New(url, "secret", "", nil)
	_, err := o.Generate(context.Background(), providers.Config{Prompt: "a samosa"})
	if err == nil {
		t.Fatal("Expected error for closed server")
	}
	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("Transport failure should not be a StatusError")
	}
}
