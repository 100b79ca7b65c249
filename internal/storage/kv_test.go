package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoadDefaultsOnMissingAndMalformed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	orders, err := NewOrderRepo(db).List(ctx)
	if err != nil {
		t.Fatalf("list on empty store: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty order list, got %d", len(orders))
	}

	// Corrupt text must behave exactly like an absent key.
	if err := putText(ctx, db, KeyOrders, `{not json!`); err != nil {
		t.Fatalf("put garbage: %v", err)
	}
	orders, err = NewOrderRepo(db).List(ctx)
	if err != nil {
		t.Fatalf("list over garbage: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected default on malformed text, got %d orders", len(orders))
	}

	if err := putText(ctx, db, KeyProfile, `[1,2,3]`); err != nil {
		t.Fatalf("put wrong shape: %v", err)
	}
	p, err := NewProfileRepo(db).Get(ctx)
	if err != nil {
		t.Fatalf("profile get over garbage: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile on malformed text, got %+v", p)
	}
}

func TestWishlistMembership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	wl := NewWishlistRepo(db)

	added, err := wl.Add(ctx, "ebook-mini-guide")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !added {
		t.Fatalf("first add should report a change")
	}

	added, err = wl.Add(ctx, "ebook-mini-guide")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if added {
		t.Fatalf("duplicate add should be a no-op")
	}

	ids, err := wl.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"ebook-mini-guide"}, ids); diff != "" {
		t.Fatalf("wishlist mismatch (-want +got):\n%s", diff)
	}

	removed, err := wl.Remove(ctx, "ebook-mini-guide")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed {
		t.Fatalf("remove should report a change")
	}
	removed, err = wl.Remove(ctx, "ebook-mini-guide")
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if removed {
		t.Fatalf("removing an absent id should be a no-op")
	}
}

func TestOrderRecordIsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepo(db)

	o1 := Order{ID: "order-1", Currency: "USD", Status: StatusCompleted, CreatedAt: time.Now()}
	o2 := Order{ID: "order-2", Currency: "USD", Status: StatusReserved, CreatedAt: time.Now()}
	if err := repo.Record(ctx, o1); err != nil {
		t.Fatalf("record o1: %v", err)
	}
	if err := repo.Record(ctx, o2); err != nil {
		t.Fatalf("record o2: %v", err)
	}

	orders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("len(orders)=%d, want 2", len(orders))
	}
	if orders[0].ID != "order-2" || orders[1].ID != "order-1" {
		t.Fatalf("order ids=[%s %s], want [order-2 order-1]", orders[0].ID, orders[1].ID)
	}
}

func TestTrackerDayAbsentIsEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewTrackerRepo(db)

	day, err := repo.Day(ctx, "2025-01-01")
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if len(day.Tasks) != 0 || day.Notes != "" {
		t.Fatalf("expected empty bucket, got %+v", day)
	}
}
