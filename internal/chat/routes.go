package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts chat endpoints under /api/chat on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/sessions", handleOpen(svc))
		r.Post("/sessions/{id}/messages", handleMessage(svc))
		r.Delete("/sessions/{id}", handleClose(svc))
		r.Get("/ws", handleWebSocket(svc))
	})
}

func handleOpen(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if body.UserID == "" {
			http.Error(w, "user_id is required", http.StatusBadRequest)
			return
		}

		_, greeting := svc.Open(r.Context(), body.UserID)
		writeJSON(w, http.StatusCreated, greeting)
	}
}

func handleMessage(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		reply, err := svc.Handle(r.Context(), id, body.Text)
		switch {
		case errors.Is(err, ErrEmptyMessage):
			http.Error(w, "text is required", http.StatusBadRequest)
			return
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, reply)
	}
}

func handleClose(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Close(r.Context(), id)
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
