package web

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/cityclock/internal/widget"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientEvent is the incoming WebSocket message format.
type clientEvent struct {
	Type string `json:"type"` // "click"
	Key  int    `json:"key"`
}

// stateMessage is the outgoing WebSocket message format.
type stateMessage struct {
	Type        string `json:"type"` // "state" or "error"
	SessionID   string `json:"session_id"`
	Nav         string `json:"nav,omitempty"`
	Date        string `json:"date,omitempty"`
	Active      int    `json:"active"`
	Interactive bool   `json:"interactive"`
	Error       string `json:"error,omitempty"`
}

// handleWebSocket runs one page session. The read loop is the only goroutine
// touching the session's widget, so events are handled strictly in order.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()

	wdg, _, err := h.startWidget(r)
	if err != nil {
		h.sendError(conn, sessionID, err.Error())
		return
	}
	h.sendState(conn, sessionID, wdg)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Printf("web: websocket read: %v", err)
			}
			return
		}

		var ev clientEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			h.sendError(conn, sessionID, "invalid message format")
			continue
		}

		switch ev.Type {
		case "click":
			if err := wdg.Click(ev.Key); err != nil {
				h.sendError(conn, sessionID, err.Error())
				continue
			}
			h.sendState(conn, sessionID, wdg)
		default:
			h.sendError(conn, sessionID, "unknown message type: "+ev.Type)
		}
	}
}

func (h *Handler) sendState(conn *websocket.Conn, sessionID string, wdg *widget.Widget) {
	msg := stateMessage{
		Type:        "state",
		SessionID:   sessionID,
		Nav:         wdg.NavHTML(),
		Date:        wdg.DateText(),
		Active:      wdg.Active(),
		Interactive: wdg.Interactive(),
	}
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Printf("web: websocket write: %v", err)
	}
}

func (h *Handler) sendError(conn *websocket.Conn, sessionID, message string) {
	msg := stateMessage{
		Type:      "error",
		SessionID: sessionID,
		Active:    -1,
		Error:     message,
	}
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Printf("web: websocket write error: %v", err)
	}
}
