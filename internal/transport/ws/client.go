package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/service"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	sendBufSize  = 256
)

// Client represents a single WebSocket connection.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	identity *domain.Identity

	send chan []byte
	done chan struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, identity *domain.Identity) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		identity: identity,
		send:     make(chan []byte, sendBufSize),
		done:     make(chan struct{}),
	}
}

// ReadPump reads events from the WebSocket and routes them.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		var event Event
		err := wsjson.Read(context.Background(), c.conn, &event)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				log.Printf("ws: client %s disconnected", c.identity.ID)
			} else {
				log.Printf("ws: read error from %s: %v", c.identity.ID, err)
			}
			return
		}

		c.handleEvent(&event)
	}
}

// WritePump writes events from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Write(ctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				log.Printf("ws: write error to %s: %v", c.identity.ID, err)
				return
			}

		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Ping(ctx)
			cancel()
			if err != nil {
				log.Printf("ws: ping error to %s: %v", c.identity.ID, err)
				return
			}

		case <-c.done:
			return
		}
	}
}

func (c *Client) handleEvent(event *Event) {
	switch event.Type {
	case EventTypeMessageSend:
		var p MessageSendPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			c.sendError("INVALID_PAYLOAD", "invalid message.send payload")
			return
		}
		if p.Text == "" {
			c.sendError("MISSING_TEXT", "message text is required")
			return
		}

		conversationID := p.ConversationID
		if conversationID == "" {
			conversationID = c.identity.ID
		}

		// Delivery back to this client happens through the notifier,
		// same as for messages sent over HTTP.
		if _, err := c.hub.chat.Send(context.Background(), c.identity, conversationID, p.Text); err != nil {
			c.sendError(sendErrorCode(err), err.Error())
		}

	case EventTypePing:
		c.sendPong()

	default:
		c.sendError("UNKNOWN_EVENT", "unknown event type: "+event.Type)
	}
}

func sendErrorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		return "NOT_FOUND"
	case errors.Is(err, service.ErrNotParticipant):
		return "FORBIDDEN"
	case errors.Is(err, service.ErrSenderBlocked):
		return "ACCOUNT_RESTRICTED"
	default:
		return "INTERNAL"
	}
}

func (c *Client) sendPong() {
	data, _ := json.Marshal(Event{Type: EventTypePong})
	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) sendError(code, message string) {
	evt, err := NewEvent(EventTypeError, "", ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
