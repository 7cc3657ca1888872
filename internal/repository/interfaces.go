package repository

import (
	"context"

	"github.com/dmarkovic7/voiphub/internal/domain"
)

// Lookups return (nil, nil) when the record does not exist.

type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	GetByUserID(ctx context.Context, userID string) (*domain.Conversation, error)
	List(ctx context.Context) ([]domain.Conversation, error)
	// AppendMessage adds msg to the thread and bumps LastMessageAt.
	// countUnread increments the operator-side unread counter.
	AppendMessage(ctx context.Context, userID string, msg *domain.Message, countUnread bool) error
	MarkRead(ctx context.Context, userID string) error
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
}

type ModerationRepository interface {
	// Toggle blocks the user if unblocked and vice versa, returning the
	// new state.
	Toggle(ctx context.Context, userID string) (bool, error)
	IsBlocked(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
