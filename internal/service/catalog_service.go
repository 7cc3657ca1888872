package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/repository"
)

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingExists      = errors.New("listing already exists")
	ErrListingUnavailable = errors.New("listing is not available for purchase")
)

type CatalogService struct {
	listingRepo repository.ListingRepository
	chat        *ChatService
}

func NewCatalogService(listingRepo repository.ListingRepository, chat *ChatService) *CatalogService {
	return &CatalogService{
		listingRepo: listingRepo,
		chat:        chat,
	}
}

type ListingInput struct {
	ID         string               `json:"id"`
	Number     string               `json:"number"`
	Price      int                  `json:"price"`
	Type       domain.ListingType   `json:"type"`
	Year       int                  `json:"year"`
	Status     domain.ListingStatus `json:"status"`
	Rating     int                  `json:"rating"`
	Tags       []string             `json:"tags"`
	BuyEnabled *bool                `json:"buy_enabled"`
}

// toListing applies the catalog defaults: new listings are available and
// buyable unless the operator says otherwise.
func (in ListingInput) toListing() *domain.Listing {
	l := &domain.Listing{
		ID:         in.ID,
		Number:     in.Number,
		Price:      in.Price,
		Type:       in.Type,
		Year:       in.Year,
		Status:     in.Status,
		Rating:     in.Rating,
		Tags:       in.Tags,
		BuyEnabled: in.BuyEnabled == nil || *in.BuyEnabled,
	}
	if l.Status == "" {
		l.Status = domain.StatusAvailable
	}
	return l
}

func (s *CatalogService) Create(ctx context.Context, actor *domain.Identity, input ListingInput) (*domain.Listing, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	listing := input.toListing()
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	} else {
		existing, err := s.listingRepo.GetByID(ctx, listing.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrListingExists
		}
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	return listing, nil
}

// Update replaces the listing with a matching id.
func (s *CatalogService) Update(ctx context.Context, actor *domain.Identity, input ListingInput) (*domain.Listing, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	existing, err := s.listingRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrListingNotFound
	}

	listing := input.toListing()
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("updating listing: %w", err)
	}
	return listing, nil
}

func (s *CatalogService) Delete(ctx context.Context, actor *domain.Identity, id string) error {
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}

	existing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrListingNotFound
	}

	return s.listingRepo.Delete(ctx, id)
}

// List projects the catalog through a category filter. Pure read, no
// actor required: the storefront is public.
func (s *CatalogService) List(ctx context.Context, category domain.Category) ([]domain.Listing, error) {
	listings, err := s.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if category.Matches(l.Type) {
			out = append(out, l)
		}
	}
	return out, nil
}

// RequestPurchase is the entirety of the buy flow: it drops a structured
// notice into the buyer's support thread. No payment, no status change,
// no inventory decrement.
func (s *CatalogService) RequestPurchase(ctx context.Context, actor *domain.Identity, listingID string) (*domain.Message, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if !listing.Buyable() {
		return nil, ErrListingUnavailable
	}

	text := fmt.Sprintf("Request ID: %s\nI would like to purchase the %s: %q listed for $%d.\nPlease provide payment details.",
		listing.ID, listing.Type, listing.Number, listing.Price)
	return s.chat.SendSystem(ctx, actor, text)
}

// Enquire asks the operator about a listing. Works for sold or disabled
// listings too; only moderation gates it.
func (s *CatalogService) Enquire(ctx context.Context, actor *domain.Identity, listingID string) (*domain.Message, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	text := fmt.Sprintf("Hi, I have a question about the %s: %q.", listing.Type, listing.Number)
	return s.chat.SendSystem(ctx, actor, text)
}
