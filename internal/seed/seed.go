// Package seed loads the demo data the marketing site ships with. All of
// it lives in memory only and is recreated on every start.
package seed

import (
	"context"
	"time"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/repository"
)

func Demo(ctx context.Context, convs repository.ConversationRepository, listings repository.ListingRepository) error {
	if err := demoConversation(ctx, convs); err != nil {
		return err
	}
	return demoListings(ctx, listings)
}

func demoConversation(ctx context.Context, convs repository.ConversationRepository) error {
	now := time.Now()
	return convs.Create(ctx, &domain.Conversation{
		UserID:    "demo-user-1",
		UserName:  "Alice Smith",
		UserEmail: "alice@example.com",
		Messages: []domain.Message{
			{ID: "m1", Text: "Hi, is the Google Voice service still available?", SenderID: "demo-user-1", CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "m2", Text: "Yes, absolutely!", SenderID: domain.AdminSenderID, CreatedAt: now.Add(-117 * time.Minute)},
			{ID: "m3", Text: "Great, I will purchase it now.", SenderID: "demo-user-1", CreatedAt: now.Add(-time.Hour)},
		},
		UnreadCount:   2,
		LastMessageAt: now.Add(-time.Hour),
	})
}

func demoListings(ctx context.Context, listings repository.ListingRepository) error {
	items := []domain.Listing{
		{ID: "1", Number: "(212) 555-0199", Price: 35, Type: domain.TypeGoogleVoice, Year: 2015, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"Old GV", "2014-2017"}, BuyEnabled: true},
		{ID: "2", Number: "TextNow Account", Price: 15, Type: domain.TypeTextNow, Year: 2026, Status: domain.StatusAvailable, Rating: 4, Tags: []string{"Web Login", "App", "Phone"}, BuyEnabled: true},
		{ID: "3", Number: "GV Port-In Service", Price: 50, Type: domain.TypeGVSetup, Year: 2026, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"Service"}, BuyEnabled: true},
		{ID: "4", Number: "(310) 555-0245", Price: 25, Type: domain.TypeGoogleVoice, Year: 2020, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"2018-2021"}, BuyEnabled: true},
		{ID: "5", Number: "TextPlus Premium", Price: 20, Type: domain.TypeTextPlus, Year: 2025, Status: domain.StatusAvailable, Rating: 4, Tags: []string{"Premium", "Ad-Free"}, BuyEnabled: true},
		{ID: "6", Number: "Gmail + iPhone Mix", Price: 45, Type: domain.TypeGmailIphone, Year: 2026, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"Bundle", "iOS Ready"}, BuyEnabled: true},
		{ID: "7", Number: "(415) 555-0888", Price: 10, Type: domain.TypeTalkatone, Year: 2025, Status: domain.StatusAvailable, Rating: 4, Tags: []string{"App"}, BuyEnabled: true},
		{ID: "8", Number: "(702) 555-0999", Price: 60, Type: domain.TypeRing4, Year: 2024, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"Business"}, BuyEnabled: true},
		{ID: "9", Number: "New GV Account", Price: 12, Type: domain.TypeGoogleVoice, Year: 2026, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"New GV", "2026"}, BuyEnabled: true},
		{ID: "10", Number: "Sideline Pro", Price: 55, Type: domain.TypeSideline, Year: 2025, Status: domain.StatusAvailable, Rating: 5, Tags: []string{"Business", "Pro"}, BuyEnabled: true},
	}

	// Create prepends; walk backwards to keep catalog order.
	for i := len(items) - 1; i >= 0; i-- {
		if err := listings.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
