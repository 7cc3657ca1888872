package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/repository"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("you are not a participant of this conversation")
	ErrSenderBlocked        = errors.New("account restricted")
)

// AutoReplyText is the simulated operator response to any user message.
const AutoReplyText = "Thanks for your message. An admin will be with you shortly."

// Notifier pushes real-time conversation events to connected clients.
type Notifier interface {
	NotifyNewMessage(conversationID string, msg *domain.Message)
	NotifyRead(conversationID string)
}

type ChatService struct {
	convRepo  repository.ConversationRepository
	modRepo   repository.ModerationRepository
	responder *ReplyScheduler
	notifier  Notifier
}

func NewChatService(convRepo repository.ConversationRepository, modRepo repository.ModerationRepository, autoReplyDelay time.Duration) *ChatService {
	s := &ChatService{
		convRepo: convRepo,
		modRepo:  modRepo,
	}
	s.responder = NewReplyScheduler(autoReplyDelay, s.deliverAutoReply)
	return s
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *ChatService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Close cancels all pending auto-replies. Call on shutdown.
func (s *ChatService) Close() {
	s.responder.Stop()
}

// Send appends a message from the acting identity to the target thread.
// Users may only write to their own thread and only while not blocked;
// admins may write to any existing thread and bypass moderation. A user
// send arms the simulated operator reply.
func (s *ChatService) Send(ctx context.Context, actor *domain.Identity, conversationID, text string) (*domain.Message, error) {
	if err := s.checkParticipant(ctx, actor, conversationID); err != nil {
		return nil, err
	}
	if err := s.checkNotBlocked(ctx, actor); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:        uuid.NewString(),
		Text:      text,
		SenderID:  senderID(actor),
		CreatedAt: time.Now(),
	}
	if err := s.convRepo.AppendMessage(ctx, conversationID, msg, !actor.IsAdmin()); err != nil {
		return nil, fmt.Errorf("appending message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(conversationID, msg)
	}

	if !actor.IsAdmin() {
		s.responder.Schedule(conversationID)
	}

	return msg, nil
}

// SendSystem appends a structured notice (purchase request, listing
// enquiry) to the actor's own thread. Moderation applies; no operator
// reply is armed.
func (s *ChatService) SendSystem(ctx context.Context, actor *domain.Identity, text string) (*domain.Message, error) {
	if actor.IsAdmin() {
		return nil, ErrNotParticipant
	}
	if err := s.checkParticipant(ctx, actor, actor.ID); err != nil {
		return nil, err
	}
	if err := s.checkNotBlocked(ctx, actor); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:        uuid.NewString(),
		Text:      text,
		SenderID:  actor.ID,
		IsSystem:  true,
		CreatedAt: time.Now(),
	}
	if err := s.convRepo.AppendMessage(ctx, actor.ID, msg, true); err != nil {
		return nil, fmt.Errorf("appending system message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(actor.ID, msg)
	}

	return msg, nil
}

// ListConversations returns the operator inbox for admins (most recent
// activity first) and a single-thread view for users.
func (s *ChatService) ListConversations(ctx context.Context, actor *domain.Identity) ([]domain.Conversation, error) {
	if actor.IsAdmin() {
		return s.convRepo.List(ctx)
	}

	conv, err := s.convRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return []domain.Conversation{}, nil
	}
	return []domain.Conversation{*conv}, nil
}

func (s *ChatService) GetConversation(ctx context.Context, actor *domain.Identity, conversationID string) (*domain.Conversation, error) {
	if err := s.checkParticipant(ctx, actor, conversationID); err != nil {
		return nil, err
	}
	return s.convRepo.GetByUserID(ctx, conversationID)
}

// MarkRead zeroes the unread counter on a thread. Operator inbox action.
func (s *ChatService) MarkRead(ctx context.Context, actor *domain.Identity, conversationID string) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	if err := s.checkParticipant(ctx, actor, conversationID); err != nil {
		return err
	}
	if err := s.convRepo.MarkRead(ctx, conversationID); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyRead(conversationID)
	}
	return nil
}

// CancelPendingReply drops an armed auto-reply. Hook for thread deletion,
// which does not exist yet.
func (s *ChatService) CancelPendingReply(conversationID string) {
	s.responder.Cancel(conversationID)
}

// checkParticipant enforces the routing rule inside the service rather
// than trusting the caller to pick the right thread.
func (s *ChatService) checkParticipant(ctx context.Context, actor *domain.Identity, conversationID string) error {
	conv, err := s.convRepo.GetByUserID(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return ErrConversationNotFound
	}
	if !actor.IsAdmin() && conv.UserID != actor.ID {
		return ErrNotParticipant
	}
	return nil
}

func (s *ChatService) checkNotBlocked(ctx context.Context, actor *domain.Identity) error {
	if actor.IsAdmin() {
		return nil
	}
	blocked, err := s.modRepo.IsBlocked(ctx, actor.ID)
	if err != nil {
		return err
	}
	if blocked {
		return ErrSenderBlocked
	}
	return nil
}

func (s *ChatService) deliverAutoReply(conversationID string) {
	msg := &domain.Message{
		ID:        uuid.NewString(),
		Text:      AutoReplyText,
		SenderID:  domain.AdminSenderID,
		CreatedAt: time.Now(),
	}
	if err := s.convRepo.AppendMessage(context.Background(), conversationID, msg, false); err != nil {
		log.Printf("chat: auto-reply dropped: %v", err)
		return
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(conversationID, msg)
	}
}

func senderID(actor *domain.Identity) string {
	if actor.IsAdmin() {
		return domain.AdminSenderID
	}
	return actor.ID
}
