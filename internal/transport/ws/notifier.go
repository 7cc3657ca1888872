package ws

import (
	"log"

	"github.com/dmarkovic7/voiphub/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyNewMessage(conversationID string, msg *domain.Message) {
	evt, err := NewEvent(EventTypeMessageNew, conversationID, MessagePayload{Message: *msg})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(conversationID, evt)
}

func (n *HubNotifier) NotifyRead(conversationID string) {
	evt, err := NewEvent(EventTypeConversationRead, conversationID, nil)
	if err != nil {
		return
	}
	n.hub.Broadcast(conversationID, evt)
}
