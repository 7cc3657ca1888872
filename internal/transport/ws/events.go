package ws

import (
	"encoding/json"
	"time"

	"github.com/dmarkovic7/voiphub/internal/domain"
)

// Event types - Client → Server
const (
	EventTypeMessageSend = "message.send"
	EventTypePing        = "ping"
)

// Event types - Server → Client
const (
	EventTypeMessageNew       = "message.new"
	EventTypeConversationRead = "conversation.read"
	EventTypePong             = "pong"
	EventTypeError            = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type           string          `json:"type"`
	ConversationID string          `json:"conversation_id,omitempty"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	Timestamp      int64           `json:"ts,omitempty"`
}

// --- Client → Server payloads ---

type MessageSendPayload struct {
	// ConversationID selects the thread for admins; users always write
	// to their own thread and may leave it empty.
	ConversationID string `json:"conversation_id,omitempty"`
	Text           string `json:"text"`
}

// --- Server → Client payloads ---

type MessagePayload struct {
	domain.Message
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType, conversationID string, payload any) (*Event, error) {
	evt := &Event{
		Type:           eventType,
		ConversationID: conversationID,
		Timestamp:      time.Now().Unix(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		evt.Payload = data
	}
	return evt, nil
}
