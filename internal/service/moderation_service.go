package service

import (
	"context"
	"errors"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/repository"
)

var ErrAdminOnly = errors.New("admin access required")

type ModerationService struct {
	modRepo repository.ModerationRepository
}

func NewModerationService(modRepo repository.ModerationRepository) *ModerationService {
	return &ModerationService{modRepo: modRepo}
}

// ToggleBlock flips the restriction on a user id and returns the new
// state. Toggling twice restores the original state.
func (s *ModerationService) ToggleBlock(ctx context.Context, actor *domain.Identity, userID string) (bool, error) {
	if !actor.IsAdmin() {
		return false, ErrAdminOnly
	}
	return s.modRepo.Toggle(ctx, userID)
}

// IsBlocked is a pure lookup; users call it to learn their own state
// before the chat panel is shown.
func (s *ModerationService) IsBlocked(ctx context.Context, userID string) (bool, error) {
	return s.modRepo.IsBlocked(ctx, userID)
}

func (s *ModerationService) ListBlocked(ctx context.Context, actor *domain.Identity) ([]string, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	list, err := s.modRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
