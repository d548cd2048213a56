package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/generative-ai-go/genai"
	"github.com/samosastudio/samosa/internal/providers"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini image models
type Gemini struct {
	apiKey string
}

// New returns a new Gemini provider
func New(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey}
}

// Generate renders the prompt with Gemini. Inline image parts are returned as
// data URLs; text parts go through the same link extraction as chat replies.
func (g *Gemini) Generate(ctx context.Context, config providers.Config) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(config.Model)

	resp, err := model.GenerateContent(ctx, genai.Text(config.Prompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			slog.Error("API Error", "status", apiErr.Code, "body", apiErr.Message)
			return "", &providers.StatusError{
				StatusCode: apiErr.Code,
				Status:     fmt.Sprintf("%d %s", apiErr.Code, http.StatusText(apiErr.Code)),
				Body:       apiErr.Message,
			}
		}
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			slog.Error("Gemini blocked the prompt", "err", blocked)
			return "", providers.ErrNoImageURL
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		if u, err := imageFromParts(candidate.Content.Parts); err == nil {
			return u, nil
		}
	}

	slog.Error("No image found in Gemini response", "candidates", len(resp.Candidates))
	return "", providers.ErrNoImageURL
}

func imageFromParts(parts []genai.Part) (string, error) {
	for _, part := range parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return "data:" + blob.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(blob.Data), nil
		}
	}
	for _, part := range parts {
		if txt, ok := part.(genai.Text); ok {
			if u, err := providers.FromText(string(txt)); err == nil {
				return u, nil
			}
		}
	}
	return "", providers.ErrNoImageURL
}
