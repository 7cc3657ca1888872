package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmarkovic7/voiphub/internal/domain"
)

// ConversationRepo keeps every support thread in process memory. Nothing
// is persisted; the store is rebuilt from seed data on restart.
type ConversationRepo struct {
	mu    sync.RWMutex
	convs map[string]*domain.Conversation
}

func NewConversationRepo() *ConversationRepo {
	return &ConversationRepo{convs: make(map[string]*domain.Conversation)}
}

func (r *ConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.convs[conv.UserID]; ok {
		return fmt.Errorf("conversation %s already exists", conv.UserID)
	}
	r.convs[conv.UserID] = cloneConversation(conv)
	return nil
}

func (r *ConversationRepo) GetByUserID(ctx context.Context, userID string) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conv, ok := r.convs[userID]
	if !ok {
		return nil, nil
	}
	return cloneConversation(conv), nil
}

// List returns all threads in inbox order, most recent activity first.
func (r *ConversationRepo) List(ctx context.Context) ([]domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Conversation, 0, len(r.convs))
	for _, conv := range r.convs {
		out = append(out, *cloneConversation(conv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	return out, nil
}

func (r *ConversationRepo) AppendMessage(ctx context.Context, userID string, msg *domain.Message, countUnread bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.convs[userID]
	if !ok {
		return fmt.Errorf("conversation %s not found", userID)
	}
	conv.Messages = append(conv.Messages, *msg)
	conv.LastMessageAt = msg.CreatedAt
	if countUnread {
		conv.UnreadCount++
	}
	return nil
}

func (r *ConversationRepo) MarkRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conv, ok := r.convs[userID]; ok {
		conv.UnreadCount = 0
	}
	return nil
}

// cloneConversation copies the thread so callers never share the backing
// message slice with the store.
func cloneConversation(conv *domain.Conversation) *domain.Conversation {
	cp := *conv
	cp.Messages = append([]domain.Message(nil), conv.Messages...)
	return &cp
}
