package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/repository/memory"
)

type catalogFixture struct {
	catalog  *CatalogService
	listings *memory.ListingRepo
	chatFix  *chatFixture
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	cf := newChatFixture(t, time.Hour)
	listings := memory.NewListingRepo()
	return &catalogFixture{
		catalog:  NewCatalogService(listings, cf.chat),
		listings: listings,
		chatFix:  cf,
	}
}

func enabled(b bool) *bool { return &b }

func TestCatalogCRUDAdminOnly(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	input := ListingInput{Number: "(212) 555-0100", Type: domain.TypeGoogleVoice, Price: 30, Year: 2020, Rating: 5}

	if _, err := f.catalog.Create(ctx, alice, input); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("user create err = %v, want ErrAdminOnly", err)
	}
	if _, err := f.catalog.Update(ctx, alice, input); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("user update err = %v, want ErrAdminOnly", err)
	}
	if err := f.catalog.Delete(ctx, alice, "1"); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("user delete err = %v, want ErrAdminOnly", err)
	}
}

func TestCatalogCreateDefaults(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	listing, err := f.catalog.Create(ctx, admin, ListingInput{
		Number: "(212) 555-0100", Type: domain.TypeGoogleVoice, Price: 30, Year: 2020, Rating: 5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if listing.ID == "" {
		t.Error("no id generated")
	}
	if listing.Status != domain.StatusAvailable {
		t.Errorf("status = %q, want available", listing.Status)
	}
	if !listing.BuyEnabled {
		t.Error("new listing not buyable by default")
	}
}

func TestCatalogUpdateReplaces(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	created, err := f.catalog.Create(ctx, admin, ListingInput{
		ID: "x", Number: "(212) 555-0100", Type: domain.TypeGoogleVoice, Price: 30, Year: 2020, Rating: 5,
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := f.catalog.Update(ctx, admin, ListingInput{
		ID: created.ID, Number: created.Number, Type: created.Type, Price: 25, Year: 2020, Rating: 4,
		Status: domain.StatusSold, BuyEnabled: enabled(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Price != 25 || updated.Status != domain.StatusSold || updated.BuyEnabled {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := f.catalog.Update(ctx, admin, ListingInput{ID: "missing", Number: "n", Type: domain.TypeOther, Price: 1, Year: 2020, Rating: 3}); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("update missing err = %v, want ErrListingNotFound", err)
	}
}

func TestCatalogDelete(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.Create(ctx, admin, ListingInput{ID: "x", Number: "n", Type: domain.TypeOther, Price: 5, Year: 2020, Rating: 3}); err != nil {
		t.Fatal(err)
	}
	if err := f.catalog.Delete(ctx, admin, "x"); err != nil {
		t.Fatal(err)
	}
	got, err := f.listings.GetByID(ctx, "x")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("listing still present after delete")
	}
	if err := f.catalog.Delete(ctx, admin, "x"); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("double delete err = %v, want ErrListingNotFound", err)
	}
}

func TestCatalogListByCategory(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	seed := []ListingInput{
		{ID: "gv1", Number: "a", Type: domain.TypeGoogleVoice, Price: 10, Year: 2020, Rating: 5},
		{ID: "app1", Number: "b", Type: domain.TypeTextNow, Price: 10, Year: 2020, Rating: 4},
		{ID: "biz1", Number: "c", Type: domain.TypeRing4, Price: 10, Year: 2020, Rating: 5},
		{ID: "svc1", Number: "d", Type: domain.TypeOther, Price: 10, Year: 2020, Rating: 3},
	}
	for _, in := range seed {
		if _, err := f.catalog.Create(ctx, admin, in); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		category domain.Category
		want     []string
	}{
		{domain.CategoryAll, []string{"gv1", "app1", "biz1", "svc1"}},
		{domain.CategoryGV, []string{"gv1"}},
		{domain.CategoryApps, []string{"app1"}},
		{domain.CategoryBusiness, []string{"biz1"}},
		{domain.CategoryServices, []string{"svc1"}},
	}
	for _, tt := range tests {
		got, err := f.catalog.List(ctx, tt.category)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(tt.want) {
			t.Errorf("List(%q) returned %d listings, want %d", tt.category, len(got), len(tt.want))
			continue
		}
		for _, l := range got {
			found := false
			for _, id := range tt.want {
				if l.ID == id {
					found = true
				}
			}
			if !found {
				t.Errorf("List(%q) included unexpected %q", tt.category, l.ID)
			}
		}
	}
}

func TestPurchaseFlow(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.Create(ctx, admin, ListingInput{
		ID: "x", Number: "TextNow Account", Type: domain.TypeTextNow, Price: 10, Year: 2026, Rating: 4,
	}); err != nil {
		t.Fatal(err)
	}
	before := f.chatFix.messageCount(t, alice.ID)

	msg, err := f.catalog.RequestPurchase(ctx, alice, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !msg.IsSystem {
		t.Error("purchase message not flagged as system")
	}
	if msg.SenderID != alice.ID {
		t.Errorf("purchase sender = %q, want buyer id", msg.SenderID)
	}
	if !strings.Contains(msg.Text, "Request ID: x") {
		t.Errorf("purchase text missing request id: %q", msg.Text)
	}
	if !strings.Contains(msg.Text, "$10") {
		t.Errorf("purchase text missing price: %q", msg.Text)
	}
	if !strings.Contains(msg.Text, `"TextNow Account"`) {
		t.Errorf("purchase text missing title: %q", msg.Text)
	}

	if got := f.chatFix.messageCount(t, alice.ID); got != before+1 {
		t.Errorf("message count %d -> %d, want exactly one new message", before, got)
	}

	// No auto-sale: the listing stays available.
	listing, _ := f.listings.GetByID(ctx, "x")
	if listing.Status != domain.StatusAvailable {
		t.Errorf("purchase changed status to %q", listing.Status)
	}
}

func TestPurchaseGates(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.Create(ctx, admin, ListingInput{
		ID: "sold", Number: "a", Type: domain.TypeTextNow, Price: 10, Year: 2020, Rating: 4, Status: domain.StatusSold,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.catalog.Create(ctx, admin, ListingInput{
		ID: "off", Number: "b", Type: domain.TypeTextNow, Price: 10, Year: 2020, Rating: 4, BuyEnabled: enabled(false),
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.catalog.RequestPurchase(ctx, alice, "sold"); !errors.Is(err, ErrListingUnavailable) {
		t.Errorf("sold purchase err = %v, want ErrListingUnavailable", err)
	}
	if _, err := f.catalog.RequestPurchase(ctx, alice, "off"); !errors.Is(err, ErrListingUnavailable) {
		t.Errorf("disabled purchase err = %v, want ErrListingUnavailable", err)
	}
	if _, err := f.catalog.RequestPurchase(ctx, alice, "nope"); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("missing purchase err = %v, want ErrListingNotFound", err)
	}
}

func TestPurchaseBlockedBuyer(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.Create(ctx, admin, ListingInput{
		ID: "x", Number: "a", Type: domain.TypeTextNow, Price: 10, Year: 2020, Rating: 4,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.chatFix.mod.Toggle(ctx, alice.ID); err != nil {
		t.Fatal(err)
	}
	before := f.chatFix.messageCount(t, alice.ID)

	if _, err := f.catalog.RequestPurchase(ctx, alice, "x"); !errors.Is(err, ErrSenderBlocked) {
		t.Errorf("blocked purchase err = %v, want ErrSenderBlocked", err)
	}
	if got := f.chatFix.messageCount(t, alice.ID); got != before {
		t.Error("blocked purchase appended a message")
	}
}

func TestEnquiry(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	// Enquiries work even for sold listings.
	if _, err := f.catalog.Create(ctx, admin, ListingInput{
		ID: "x", Number: "(212) 555-0199", Type: domain.TypeGoogleVoice, Price: 35, Year: 2015, Rating: 5, Status: domain.StatusSold,
	}); err != nil {
		t.Fatal(err)
	}

	msg, err := f.catalog.Enquire(ctx, alice, "x")
	if err != nil {
		t.Fatal(err)
	}
	want := `Hi, I have a question about the Google Voice: "(212) 555-0199".`
	if msg.Text != want {
		t.Errorf("enquiry text = %q, want %q", msg.Text, want)
	}
	if !msg.IsSystem {
		t.Error("enquiry not flagged as system")
	}
}
