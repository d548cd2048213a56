package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/samosastudio/samosa/internal/providers"
)

// Ollama is a provider for a local Ollama server running an image model
type Ollama struct {
	baseURL string
	client  *http.Client
}

// New returns a new Ollama provider
func New(baseURL string, client *http.Client) *Ollama {
	if client == nil {
		client = http.DefaultClient
	}
	return &Ollama{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

type imageData struct {
	URL     string `json:"url,omitempty"`
	B64JSON string `json:"b64_json,omitempty"`
}

// Generate renders the prompt through the OpenAI compatible images endpoint
func (o *Ollama) Generate(ctx context.Context, config providers.Config) (string, error) {
	url := o.baseURL + "/v1/images/generations"

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":           config.Model,
		"prompt":          config.Prompt,
		"n":               1,
		"response_format": "b64_json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("API Error", "status", resp.StatusCode, "body", string(body))
		return "", &providers.StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	var response struct {
		Data []imageData `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	for _, d := range response.Data {
		if d.URL != "" {
			return d.URL, nil
		}
		if d.B64JSON != "" {
			return "data:image/png;base64," + d.B64JSON, nil
		}
	}

	slog.Error("No image found in Ollama response", "images", len(response.Data))
	return "", providers.ErrNoImageURL
}
