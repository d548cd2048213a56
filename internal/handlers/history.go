package handlers

import (
	"net/http"

	"github.com/samosastudio/samosa/internal/models"
	"github.com/samosastudio/samosa/internal/scene"
)

type historyResponse struct {
	History []models.GeneratedImage `json:"history"`
}

type optionsResponse struct {
	Options  map[string][]string `json:"options"`
	Defaults scene.Settings      `json:"defaults"`
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, historyResponse{History: h.history.Get(sessionID)})
	case http.MethodDelete:
		h.history.Delete(sessionID)
		h.writeJSON(w, http.StatusOK, historyResponse{History: []models.GeneratedImage{}})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, optionsResponse{
		Options:  scene.Options(),
		Defaults: scene.DefaultSettings(),
	})
}
