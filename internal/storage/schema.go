package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the key-value namespace. Every store owns one key whose
// value is a JSON-encoded document; there are no cross-key transactions.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Store keys. One per store; exact names are part of the on-disk format.
const (
	KeyProfile         = "profile"
	KeyWishlist        = "wishlist"
	KeyOrders          = "orders"
	KeyBookings        = "bookings"
	KeyTracker         = "tracker"
	KeyContactMessages = "contact_messages"
	KeyLeads           = "leads"
	KeyCurrency        = "currency_override"
)
