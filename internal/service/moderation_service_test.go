package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dmarkovic7/voiphub/internal/repository/memory"
)

func TestToggleBlockIsInvolution(t *testing.T) {
	svc := NewModerationService(memory.NewModerationRepo())
	ctx := context.Background()

	blocked, err := svc.ToggleBlock(ctx, admin, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !blocked {
		t.Error("first toggle did not block")
	}

	blocked, err = svc.ToggleBlock(ctx, admin, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if blocked {
		t.Error("second toggle did not restore original state")
	}

	isBlocked, err := svc.IsBlocked(ctx, alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if isBlocked {
		t.Error("user still blocked after double toggle")
	}
}

func TestModerationAdminOnly(t *testing.T) {
	svc := NewModerationService(memory.NewModerationRepo())
	ctx := context.Background()

	if _, err := svc.ToggleBlock(ctx, alice, bob.ID); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("user toggle err = %v, want ErrAdminOnly", err)
	}
	if _, err := svc.ListBlocked(ctx, alice); !errors.Is(err, ErrAdminOnly) {
		t.Errorf("user list err = %v, want ErrAdminOnly", err)
	}
}

func TestListBlockedSorted(t *testing.T) {
	svc := NewModerationService(memory.NewModerationRepo())
	ctx := context.Background()

	for _, id := range []string{"zed", "ann", "mid"} {
		if _, err := svc.ToggleBlock(ctx, admin, id); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListBlocked(ctx, admin)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ann", "mid", "zed"}
	if len(list) != len(want) {
		t.Fatalf("len = %d, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("list[%d] = %q, want %q", i, list[i], want[i])
		}
	}
}
