package models

import (
	"time"

	"github.com/samosastudio/samosa/internal/scene"
)

// DefaultPromptLabel is shown when a generation reply carries no prompt
const DefaultPromptLabel = "3D Hyper-realistic Samosa Scene"

// GeneratedImage represents one successful generation
type GeneratedImage struct {
	ID        string         `json:"id"`
	URL       string         `json:"url"`
	Prompt    string         `json:"prompt"`
	Timestamp time.Time      `json:"timestamp"`
	Settings  scene.Settings `json:"settings"`
}

// GenerationState is the view state of a generation session
type GenerationState struct {
	IsGenerating bool             `json:"isGenerating"`
	Progress     float64          `json:"progress"` // 0-100, estimated
	CurrentImage *string          `json:"currentImage"`
	History      []GeneratedImage `json:"history"` // newest first
	Error        *string          `json:"error"`
}
