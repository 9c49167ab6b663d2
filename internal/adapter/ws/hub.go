// Package ws broadcasts lifecycle events to websocket observers (a UI, a
// monitoring dashboard). The hub is a pure observer: delivery failures drop
// the client and never feed back into the command lifecycle.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ruimtorres/tradedesk-backend/internal/usecase/interpreter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// writeTimeout bounds a single frame write so one stuck client cannot back
// up the broadcast loop.
const writeTimeout = 5 * time.Second

// eventFrame is the JSON wire shape pushed to observers.
type eventFrame struct {
	Kind         string `json:"kind"`
	CommandID    string `json:"command_id"`
	OldStatus    string `json:"old_status,omitempty"`
	NewStatus    string `json:"new_status"`
	OriginalText string `json:"original_text,omitempty"`
	Action       string `json:"action,omitempty"`
	Asset        string `json:"asset,omitempty"`
	RiskLevel    string `json:"risk_level,omitempty"`
	Timestamp    string `json:"timestamp"`
}

// Hub fans lifecycle events out to connected websocket clients.
// Hub implements interpreter.Subscriber.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Notify implements interpreter.Subscriber by broadcasting the event as a
// JSON frame. Marshal or delivery problems are logged, never propagated.
func (h *Hub) Notify(_ context.Context, evt interpreter.Event) {
	frame := eventFrame{
		Kind:      string(evt.Kind),
		CommandID: evt.CommandID.String(),
		OldStatus: string(evt.OldStatus),
		NewStatus: string(evt.NewStatus),
		Timestamp: evt.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if evt.Command != nil {
		frame.OriginalText = evt.Command.OriginalText
		frame.Action = string(evt.Command.Intent.Action)
		frame.Asset = evt.Command.Intent.Asset
		frame.RiskLevel = string(evt.Command.RiskLevel)
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		slog.Warn("ws hub: failed to marshal event", "err", err)
		return
	}
	h.broadcast(payload)
}

// broadcast writes the payload to every client, dropping clients whose
// writes fail or time out.
func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// Handler returns an http.Handler that upgrades requests to websocket
// connections and registers them with the hub.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("ws hub: upgrade failed", "err", err)
			return
		}

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()
	})
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
