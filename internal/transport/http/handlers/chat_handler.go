package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dmarkovic7/voiphub/internal/service"
	"github.com/dmarkovic7/voiphub/internal/transport/http/middleware"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	convs, err := h.chatService.ListConversations(r.Context(), ident)
	if err != nil {
		log.Printf("ERROR list conversations: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, convs)
}

func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	conv, err := h.chatService.GetConversation(r.Context(), ident, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConversationNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		case errors.Is(err, service.ErrNotParticipant):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not a participant of this conversation")
		default:
			log.Printf("ERROR get conversation: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if input.Text == "" {
		writeError(w, http.StatusBadRequest, "MISSING_TEXT", "Message text is required")
		return
	}

	msg, err := h.chatService.Send(r.Context(), ident, r.PathValue("id"), input.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConversationNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		case errors.Is(err, service.ErrNotParticipant):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not a participant of this conversation")
		case errors.Is(err, service.ErrSenderBlocked):
			writeError(w, http.StatusForbidden, "ACCOUNT_RESTRICTED", "Your account is restricted from sending messages")
		default:
			log.Printf("ERROR send message: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	if err := h.chatService.MarkRead(r.Context(), ident, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminOnly):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		case errors.Is(err, service.ErrConversationNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		default:
			log.Printf("ERROR mark read: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
