package providers

import (
	"context"
	"errors"
	"fmt"
)

// Config represents a single image generation request
type Config struct {
	Model  string
	Prompt string
}

// Generator defines the interface for a text-to-image provider.
// Generate returns a URL (remote or data:) for the rendered image.
type Generator interface {
	Generate(ctx context.Context, config Config) (string, error)
}

// ErrNoImageURL is returned when the provider answered successfully but no
// image reference could be found in its reply.
var ErrNoImageURL = errors.New("No image URL received from generation service")

// StatusError is returned when the provider replied with a non-2xx status.
// Body is kept for logging only.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Generation failed: %s", e.Status)
}
