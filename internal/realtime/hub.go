package realtime

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Change is one notification payload fanned out to subscribers. Clients
// reload the named state wholesale on receipt.
type Change struct {
	Table   string `json:"table"`
	GroupID string `json:"group_id,omitempty"`
}

// Hub fans database change notifications out to websocket subscribers.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*websocket.Conn]chan Change
	upgrader    websocket.Upgrader
	logger      *zap.SugaredLogger
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		subscribers: make(map[*websocket.Conn]chan Change),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Broadcast queues the change for every subscriber. A subscriber that
// cannot keep up has the change dropped; the next reload catches it up.
func (h *Hub) Broadcast(change Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- change:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) subscribe(conn *websocket.Conn) chan Change {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Change, 16)
	h.subscribers[conn] = ch
	return ch
}

func (h *Hub) unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[conn]; ok {
		close(ch)
		delete(h.subscribers, conn)
	}
	_ = conn.Close()
}

// ServeHTTP upgrades the request and streams changes until the client
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnw("failed to upgrade events connection", "error", err)
		return
	}

	ch := h.subscribe(conn)
	defer h.unsubscribe(conn)

	// drain client frames so pings and closes are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unsubscribe(conn)
				return
			}
		}
	}()

	for change := range ch {
		if err := conn.WriteJSON(change); err != nil {
			return
		}
	}
}
