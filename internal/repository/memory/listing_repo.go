package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmarkovic7/voiphub/internal/domain"
)

// ListingRepo holds the catalog in storefront order, newest first.
type ListingRepo struct {
	mu       sync.RWMutex
	listings []domain.Listing
}

func NewListingRepo() *ListingRepo {
	return &ListingRepo{}
}

func (r *ListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.listings {
		if r.listings[i].ID == listing.ID {
			return fmt.Errorf("listing %s already exists", listing.ID)
		}
	}
	r.listings = append([]domain.Listing{*cloneListing(listing)}, r.listings...)
	return nil
}

func (r *ListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.listings {
		if r.listings[i].ID == id {
			return cloneListing(&r.listings[i]), nil
		}
	}
	return nil, nil
}

func (r *ListingRepo) List(ctx context.Context) ([]domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Listing, 0, len(r.listings))
	for i := range r.listings {
		out = append(out, *cloneListing(&r.listings[i]))
	}
	return out, nil
}

// Update replaces the listing with a matching id.
func (r *ListingRepo) Update(ctx context.Context, listing *domain.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.listings {
		if r.listings[i].ID == listing.ID {
			r.listings[i] = *cloneListing(listing)
			return nil
		}
	}
	return fmt.Errorf("listing %s not found", listing.ID)
}

func (r *ListingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.listings {
		if r.listings[i].ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return nil
}

func cloneListing(l *domain.Listing) *domain.Listing {
	cp := *l
	cp.Tags = append([]string(nil), l.Tags...)
	return &cp
}
