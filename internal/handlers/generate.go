package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/samosastudio/samosa/internal/gateway"
	"github.com/samosastudio/samosa/internal/models"
	"github.com/samosastudio/samosa/internal/scene"
)

const maxRequestBytes = 1 << 20

type generateRequest struct {
	Settings *scene.Settings `json:"settings"`
}

type generateResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var request generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&request); err != nil {
		var invalid *scene.InvalidValueError
		if errors.As(err, &invalid) {
			h.writeError(w, "Invalid settings: "+invalid.Error(), http.StatusBadRequest)
			return
		}
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := h.sessionID(w, r)

	result, err := h.gateway.Generate(r.Context(), request.Settings)
	if err != nil {
		var gwErr *gateway.Error
		if errors.As(err, &gwErr) {
			slog.Error("Generation failed", "kind", gwErr.Kind, "session_id", sessionID)
			h.writeError(w, gwErr.Message, gwErr.Status)
			return
		}
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.history.Prepend(sessionID, models.GeneratedImage{
		ID:        uuid.NewString(),
		URL:       result.ImageURL,
		Prompt:    result.Prompt,
		Timestamp: h.now(),
		Settings:  *request.Settings,
	})

	h.writeJSON(w, http.StatusOK, generateResponse{
		Success:  true,
		ImageURL: result.ImageURL,
		Prompt:   result.Prompt,
	})
}
