package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// sessionResponse is the JSON view of a session.
type sessionResponse struct {
	SessionID string    `json:"session_id"`
	State     State     `json:"state"`
	Messages  []Message `json:"messages"`
}

type sendRequest struct {
	Content string `json:"content"`
}

type sendResponse struct {
	Message Message `json:"message"`
	State   State   `json:"state"`
}

// RegisterRoutes mounts the chat JSON API and WebSocket endpoint.
func RegisterRoutes(r chi.Router, hub *Hub, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Route("/api/chat/sessions", func(r chi.Router) {
		r.Post("/", handleCreate(hub))
		r.Get("/{id}", handleGet(hub))
		r.Delete("/{id}", handleDelete(hub))
		r.Get("/{id}/messages", handleMessages(hub))
		r.Post("/{id}/messages", handleSend(hub))
	})
	r.Get("/ws/chat", handleWebSocket(hub, logger))
}

func handleCreate(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := hub.Create()
		writeJSON(w, http.StatusCreated, viewOf(s))
	}
}

func handleGet(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := hub.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, viewOf(s))
	}
}

func handleMessages(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := hub.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.Messages())
	}
}

func handleSend(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := hub.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		msg, err := s.Send(req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, sendResponse{Message: msg, State: s.State()})
	}
}

func handleDelete(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := hub.Close(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func viewOf(s *Session) sessionResponse {
	return sessionResponse{SessionID: s.ID(), State: s.State(), Messages: s.Messages()}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrEmptyMessage):
		status = http.StatusBadRequest
	case errors.Is(err, ErrSessionClosed):
		status = http.StatusGone
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
