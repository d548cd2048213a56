package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/samosastudio/samosa/internal/providers"
	"github.com/samosastudio/samosa/internal/scene"
)

// Result is a successful generation
type Result struct {
	ImageURL string
	Prompt   string
}

// Gateway composes prompts and forwards them to a generator. It holds no
// per-request state and may be called concurrently.
type Gateway struct {
	composer  *scene.Composer
	generator providers.Generator
	model     string
	timeout   time.Duration
}

// New returns a Gateway using the base template. A positive timeout bounds
// each upstream call.
func New(generator providers.Generator, model string, timeout time.Duration) *Gateway {
	return &Gateway{
		composer:  scene.DefaultComposer(),
		generator: generator,
		model:     model,
		timeout:   timeout,
	}
}

// Generate validates settings, builds the prompt and makes exactly one
// upstream call. Failures are returned as *Error.
func (g *Gateway) Generate(ctx context.Context, settings *scene.Settings) (*Result, error) {
	if settings == nil {
		return nil, invalidRequest("Settings are required", nil)
	}

	prompt, err := g.composer.Compose(*settings)
	if err != nil {
		return nil, invalidRequest("Invalid settings: "+err.Error(), err)
	}

	slog.Info("Generating image", "settings", *settings, "model", g.model, "prompt_length", len(prompt))

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	imageURL, err := g.generator.Generate(ctx, providers.Config{
		Model:  g.model,
		Prompt: prompt,
	})
	if err != nil {
		return nil, classify(err)
	}

	slog.Info("Image generated", "url", imageURL)
	return &Result{ImageURL: imageURL, Prompt: prompt}, nil
}

func classify(err error) *Error {
	var statusErr *providers.StatusError
	switch {
	case errors.As(err, &statusErr):
		status := statusErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return &Error{Kind: UpstreamError, Status: status, Message: statusErr.Error(), Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		slog.Error("Generation timed out", "err", err)
		return &Error{Kind: NetworkError, Status: http.StatusGatewayTimeout, Message: "Generation timed out", Err: err}
	case errors.Is(err, providers.ErrNoImageURL):
		return &Error{Kind: ExtractionFailure, Status: http.StatusInternalServerError, Message: providers.ErrNoImageURL.Error(), Err: err}
	default:
		slog.Error("Generation error", "err", err)
		message := err.Error()
		if message == "" {
			message = "Unknown error occurred"
		}
		return &Error{Kind: NetworkError, Status: http.StatusInternalServerError, Message: message, Err: err}
	}
}
