package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// getText reads the raw JSON text under key. ok is false when the key is
// absent.
func getText(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	row := db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return v, true, nil
}

func putText(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

func deleteKey(ctx context.Context, db *sql.DB, key string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}

// loadJSON decodes the value under key into out. Absent or malformed text
// leaves out at its typed default: a store never fails its caller on load.
// Only infrastructure errors (the query itself) are returned.
func loadJSON[T any](ctx context.Context, db *sql.DB, key string, out *T) error {
	text, ok, err := getText(ctx, db, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil
	}
	*out = v
	return nil
}

func saveJSON[T any](ctx context.Context, db *sql.DB, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv marshal %s: %w", key, err)
	}
	return putText(ctx, db, key, string(data))
}
