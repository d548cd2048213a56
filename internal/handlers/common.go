package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/samosastudio/samosa/internal/gateway"
	"github.com/samosastudio/samosa/internal/storage"
)

const sessionCookie = "samosa_session"

type Handler struct {
	gateway *gateway.Gateway
	history *storage.HistoryStore
	now     func() time.Time
}

func New(gw *gateway.Gateway, history *storage.HistoryStore) *Handler {
	return &Handler{
		gateway: gw,
		history: history,
		now:     time.Now,
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message, "status", code)
	h.writeJSON(w, code, errorResponse{Success: false, Error: message})
}

// Session helpers

// sessionID returns the caller's history session, issuing a cookie for new callers.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
