package memory

import (
	"context"
	"testing"
	"time"
)

func TestCounterStore_IncrementsWithinWindow(t *testing.T) {
	store := NewCounterStore()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	for want := int64(1); want <= 3; want++ {
		count, resetAt, err := store.Increment(ctx, "key", time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != want {
			t.Fatalf("expected count %d, got %d", want, count)
		}
		if !resetAt.Equal(now.Add(time.Hour)) {
			t.Fatalf("expected resetAt %v, got %v", now.Add(time.Hour), resetAt)
		}
	}
}

func TestCounterStore_ResetsAfterWindowElapses(t *testing.T) {
	store := NewCounterStore()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, _, err := store.Increment(ctx, "key", time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Advance past the window: the next call starts a fresh window at 1.
	now = now.Add(time.Hour)
	count, resetAt, err := store.Increment(ctx, "key", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected fresh window count 1, got %d", count)
	}
	if !resetAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected advanced resetAt, got %v", resetAt)
	}
}

func TestCounterStore_KeysAreIndependent(t *testing.T) {
	store := NewCounterStore()
	ctx := context.Background()

	if count, _, _ := store.Increment(ctx, "a", time.Hour); count != 1 {
		t.Fatalf("expected count 1 for a, got %d", count)
	}
	if count, _, _ := store.Increment(ctx, "b", time.Hour); count != 1 {
		t.Fatalf("expected count 1 for b, got %d", count)
	}
}

func TestCounterStore_SweepEvictsExpiredWindows(t *testing.T) {
	store := NewCounterStore()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Increment(ctx, "stale", time.Minute)
	store.Increment(ctx, "fresh", time.Hour)

	now = now.Add(10 * time.Minute)
	if err := store.Sweep(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if _, ok := store.windows["stale"]; ok {
		t.Fatal("expected stale window to be evicted")
	}
	if _, ok := store.windows["fresh"]; !ok {
		t.Fatal("expected fresh window to survive the sweep")
	}

	// Eviction is invisible to correctness: the next increment just
	// opens a new window.
	if count, _, _ := store.Increment(ctx, "stale", time.Minute); count != 1 {
		t.Fatalf("expected fresh window after eviction, got count %d", count)
	}
}
