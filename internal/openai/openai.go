package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/samosastudio/samosa/internal/providers"
)

// OpenAI is a provider for chat-completions style image generation endpoints.
// The prompt is sent as a single user message and the image comes back in
// the message content.
type OpenAI struct {
	endpoint   string
	apiKey     string
	customerID string
	client     *http.Client
}

// New returns a new OpenAI provider
func New(endpoint, apiKey, customerID string, client *http.Client) *OpenAI {
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAI{
		endpoint:   endpoint,
		apiKey:     apiKey,
		customerID: customerID,
		client:     client,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type response struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt and resolves the image URL from the reply
func (o *OpenAI) Generate(ctx context.Context, config providers.Config) (string, error) {
	requestBody, err := json.Marshal(request{
		Model: config.Model,
		Messages: []message{
			{
				Role:    "user",
				Content: config.Prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	if o.customerID != "" {
		req.Header.Set("customerId", o.customerID)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		slog.Error("API Error", "status", resp.StatusCode, "body", string(body))
		return "", &providers.StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var data response
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(data.Choices) == 0 {
		slog.Error("No image URL found in response", "response", string(body))
		return "", providers.ErrNoImageURL
	}

	imageURL, err := providers.ResolveImageURL(data.Choices[0].Message.Content)
	if err != nil {
		slog.Error("No image URL found in response", "response", string(body))
		return "", err
	}

	slog.Debug("Image URL resolved", "url", imageURL)
	return imageURL, nil
}
