package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/skawashin1122/bento-ordering-system/services"
)

// OrderHub fans order events out to connected store dashboards so they
// do not have to poll /admin/orders.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish implements services.OrderNotifier. It never blocks: if the
// hub is backed up the event is dropped, the dashboard state converges
// on the next event or reload.
func (h *OrderHub) Publish(ev services.OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
		slog.Warn("order event dropped", "type", ev.Type, "orderId", ev.OrderID)
	}
}

// Run is the hub loop; start it once from main.
func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					slog.Warn("ws write failed", "err", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handle upgrades GET /ws/orders. Auth and the store-role check run in
// the middleware before this is reached.
func (h *OrderHub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	h.register <- conn
	go h.readLoop(conn)
}

// readLoop drains the connection so pings and close frames are handled;
// the feed is one-directional.
func (h *OrderHub) readLoop(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
