package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event is the message pushed to every connected client when the catalog
// changes.
type Event struct {
	Type    string      `json:"type"`
	Action  string      `json:"action"`
	Entity  string      `json:"entity"`
	ID      uint        `json:"id"`
	Data    interface{} `json:"data,omitempty"`
	UserID  string      `json:"user_id,omitempty"`
	Message string      `json:"message,omitempty"`
}

const broadcastBuffer = 64

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
	}
}

// Publish queues an event for broadcast. It never blocks: when the buffer is
// full the event is dropped and logged. A nil hub discards events.
func (h *Hub) Publish(e Event) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(e)
	if err != nil {
		log.Printf("ws: marshal %s event: %v", e.Action, err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		log.Printf("ws: broadcast buffer full, dropping %s event", e.Action)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
