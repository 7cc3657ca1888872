package memory

import (
	"context"
	"sort"
	"sync"
)

// ModerationRepo is the set of blocked user ids.
type ModerationRepo struct {
	mu      sync.RWMutex
	blocked map[string]struct{}
}

func NewModerationRepo() *ModerationRepo {
	return &ModerationRepo{blocked: make(map[string]struct{})}
}

func (r *ModerationRepo) Toggle(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blocked[userID]; ok {
		delete(r.blocked, userID)
		return false, nil
	}
	r.blocked[userID] = struct{}{}
	return true, nil
}

func (r *ModerationRepo) IsBlocked(ctx context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.blocked[userID]
	return ok, nil
}

func (r *ModerationRepo) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.blocked))
	for id := range r.blocked {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
