package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type      string `json:"type"` // "open", "message" or "close"
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type      string `json:"type"` // "greeting", "reply", "closed" or "error"
	SessionID string `json:"session_id,omitempty"`
	Intent    string `json:"intent,omitempty"`
	State     string `json:"state,omitempty"`
	Text      string `json:"text,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleWebSocket runs the chat protocol over one socket. The socket loop is
// presentation plumbing only; all conversation logic stays in the Service.
func handleWebSocket(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			var req wsRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			switch req.Type {
			case "open":
				if req.UserID == "" {
					sendWS(conn, wsResponse{Type: "error", Error: "user_id is required"})
					continue
				}
				_, greeting := svc.Open(r.Context(), req.UserID)
				sendWS(conn, wsResponse{
					Type:      "greeting",
					SessionID: greeting.SessionID,
					State:     string(greeting.State),
					Text:      greeting.Text,
				})

			case "message":
				reply, err := svc.Handle(r.Context(), req.SessionID, req.Text)
				if err != nil {
					sendWS(conn, wsResponse{Type: "error", SessionID: req.SessionID, Error: wsErrorText(err)})
					continue
				}
				sendWS(conn, wsResponse{
					Type:      "reply",
					SessionID: reply.SessionID,
					Intent:    string(reply.Intent),
					State:     string(reply.State),
					Text:      reply.Text,
				})

			case "close":
				if err := svc.Close(r.Context(), req.SessionID); err != nil {
					sendWS(conn, wsResponse{Type: "error", SessionID: req.SessionID, Error: wsErrorText(err)})
					continue
				}
				sendWS(conn, wsResponse{Type: "closed", SessionID: req.SessionID})

			default:
				sendWS(conn, wsResponse{Type: "error", Error: "unknown message type: " + req.Type})
			}
		}
	}
}

func sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}

func wsErrorText(err error) string {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return "text is required"
	case errors.Is(err, ErrSessionNotFound):
		return "session not found"
	default:
		return err.Error()
	}
}
