package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mkrellis/gridtown/internal/building"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The sim API is same-host or reverse-proxied; origin policy is the
	// proxy's job.
	CheckOrigin: func(*http.Request) bool { return true },
}

// client is one websocket subscriber. Every write to the conn goes
// through send and the writer goroutine; gorilla/websocket allows only
// one concurrent writer per conn.
type client struct {
	conn *websocket.Conn
	send chan any
}

// writer drains send onto the conn until the channel closes or a write
// fails.
func (c *client) writer() {
	for v := range c.send {
		if err := c.conn.WriteJSON(v); err != nil {
			c.conn.Close()
			return
		}
	}
	c.conn.Close()
}

// hub tracks connected websocket clients.
type hub struct {
	mu      sync.Mutex
	clients map[*client]bool
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients == nil {
		h.clients = make(map[*client]bool)
	}
	h.clients[c] = true
}

// drop detaches a client and closes its send channel. Idempotent: the
// read loop and a slow-consumer eviction can both reach it.
func (h *hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

func (h *hub) dropLocked(c *client) {
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// send queues one message for a single client. A client whose buffer is
// full is evicted rather than blocking the caller.
func (h *hub) send(c *client, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	select {
	case c.send <- v:
	default:
		h.dropLocked(c)
	}
}

func (h *hub) broadcast(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- v:
		default:
			h.dropLocked(c)
		}
	}
}

// command is one client request over the websocket.
type command struct {
	Op       string `json:"op"` // place | bulldoze | destroy | simulate
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Building string `json:"building,omitempty"`
	Steps    int    `json:"steps,omitempty"`
}

// BroadcastState pushes the current city snapshot to every client. Called
// by the engine after each tick and after every accepted command.
func (s *Server) BroadcastState() {
	s.hub.broadcast(map[string]any{
		"type":  "state",
		"state": s.City.Snap(),
	})
}

// Notify implements city.Notifier, streaming notifications to clients.
func (s *Server) Notify(kind, message string) {
	s.hub.broadcast(map[string]any{
		"type":    "notify",
		"kind":    kind,
		"message": message,
	})
}

// PlaySound implements city.Notifier.
func (s *Server) PlaySound(effect string) {
	s.hub.broadcast(map[string]any{
		"type":   "sound",
		"effect": effect,
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	cl := &client{conn: conn, send: make(chan any, 32)}
	s.hub.add(cl)
	go cl.writer()
	defer s.hub.drop(cl)

	// Greet with the current state so clients render immediately.
	s.hub.send(cl, map[string]any{"type": "state", "state": s.City.Snap()})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var cmd command
		if err := json.Unmarshal(raw, &cmd); err != nil {
			s.hub.send(cl, map[string]any{"type": "error", "error": "bad command"})
			continue
		}
		s.apply(cmd)
		s.BroadcastState()
	}
}

func (s *Server) apply(cmd command) {
	switch cmd.Op {
	case "place":
		s.City.PlaceBuilding(cmd.X, cmd.Y, building.ParseType(cmd.Building))
	case "bulldoze":
		s.City.Bulldoze(cmd.X, cmd.Y)
	case "destroy":
		s.City.Destroy(cmd.X, cmd.Y)
	case "simulate":
		s.City.Simulate(cmd.Steps)
	default:
		slog.Debug("unknown ws op", "op", cmd.Op)
	}
}
