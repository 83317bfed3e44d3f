// Package stream feeds scene assets and per-frame transforms to browser renderers over websockets
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/scene"
)

// Source provides the latest published frame, nil while unmounted
type Source interface {
	Latest() *scene.Frame
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to connected websocket clients at a bounded rate
// Clients that fall behind lose frames rather than stall the hub
type Hub struct {
	src      Source
	upgrader websocket.Upgrader
	limiter  *rate.Limiter

	mu      sync.Mutex
	clients map[*client]struct{}
	// closed is set once Run exits; later connections are turned away
	closed bool

	// Run goroutine only
	lastAssets *scene.Assets
	lastSeq    uint64
}

// NewHub creates a hub pushing at most fps frames per second
func NewHub(src Source, fps int) *Hub {
	if fps <= 0 {
		fps = parameter.StreamRate
	}
	return &Hub{
		src: src,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		limiter: rate.NewLimiter(rate.Limit(fps), 1),
		clients: make(map[*client]struct{}),
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the connection and sends the current assets immediately
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, parameter.StreamClientBuffer),
	}

	if f := h.src.Latest(); f != nil && f.Assets != nil {
		if data, err := json.Marshal(NewAssetsMessage(f.Assets)); err == nil {
			c.send <- data
		}
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	h.readPump(c)
}

// readPump discards client messages and unregisters on disconnect
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(parameter.StreamWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
			// Drain so remove's close does not leave senders blocked
			for range c.send {
			}
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcast(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client behind, drop this message
		}
	}
	return nil
}

// Run polls the source at the configured rate until ctx ends, then disconnects all clients
func (h *Hub) Run(ctx context.Context) error {
	defer h.closeAll()

	for {
		if err := h.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := h.Poll(); err != nil {
			return err
		}
	}
}

// Poll publishes at most one assets/unmount notice and one frame for the source's current state
func (h *Hub) Poll() error {
	f := h.src.Latest()

	if f == nil {
		if h.lastAssets != nil {
			h.lastAssets = nil
			h.lastSeq = 0
			return h.broadcast(UnmountMessage{Type: TypeUnmount})
		}
		return nil
	}

	if f.Assets != h.lastAssets {
		h.lastAssets = f.Assets
		h.lastSeq = 0
		if err := h.broadcast(NewAssetsMessage(f.Assets)); err != nil {
			return err
		}
	} else if f.Seq == h.lastSeq {
		return nil
	}

	h.lastSeq = f.Seq
	return h.broadcast(NewFrameMessage(f))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
