package ws

import (
	"encoding/json"
	"log"

	"github.com/dmarkovic7/voiphub/internal/service"
)

// Hub manages all active WebSocket clients and routes conversation events:
// an event for a thread goes to that thread's user and to every connected
// admin.
type Hub struct {
	chat *service.ChatService

	// clients maps identity id → client. A second login with the same
	// id replaces the first connection.
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	events     chan *conversationEvent
}

type conversationEvent struct {
	conversationID string
	data           []byte
}

func NewHub(chat *service.ChatService) *Hub {
	return &Hub{
		chat:       chat,
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan *conversationEvent, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if old, ok := h.clients[client.identity.ID]; ok {
				close(old.send)
				close(old.done)
			}
			h.clients[client.identity.ID] = client
			log.Printf("ws hub: %s connected (%d total)", client.identity.ID, len(h.clients))

		case client := <-h.unregister:
			if cur, ok := h.clients[client.identity.ID]; ok && cur == client {
				delete(h.clients, client.identity.ID)
				close(client.send)
				close(client.done)
				log.Printf("ws hub: %s disconnected (%d total)", client.identity.ID, len(h.clients))
			}

		case evt := <-h.events:
			for id, c := range h.clients {
				if !c.identity.IsAdmin() && id != evt.conversationID {
					continue
				}
				select {
				case c.send <- evt.data:
				default:
					// Slow client; drop rather than block the hub.
				}
			}
		}
	}
}

// Broadcast queues an event for everyone entitled to see the thread.
func (h *Hub) Broadcast(conversationID string, evt *Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}

	select {
	case h.events <- &conversationEvent{conversationID: conversationID, data: data}:
	default:
		log.Printf("ws hub: event queue full, dropping %s", evt.Type)
	}
}
