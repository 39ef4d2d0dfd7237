package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub fans match updates out to every connected websocket client. Clients
// with a full send buffer miss the frame rather than stall the broadcast.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends one typed frame to every client.
func (h *Hub) Broadcast(msgType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("type", msgType).Msg("broadcast payload not serializable")
		return
	}
	frame, err := json.Marshal(wsMessage{Type: msgType, Payload: data})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveWS upgrades the connection, registers the client, and pumps frames
// until either side drops. Inbound frames are ignored except as liveness.
func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request, hello []byte) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{send: make(chan []byte, 16)}
	h.register(c)
	if hello != nil {
		c.send <- hello
	}

	go func() {
		defer conn.Close()
		for frame := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}
