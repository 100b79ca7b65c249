package storage

import (
	"context"
	"database/sql"
)

// SettingsRepo holds the persisted currency override. Empty or "AUTO"
// means "detect from locale".
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) CurrencyOverride(ctx context.Context) (string, error) {
	var code string
	if err := loadJSON(ctx, r.db, KeyCurrency, &code); err != nil {
		return "", err
	}
	return code, nil
}

func (r *SettingsRepo) SetCurrencyOverride(ctx context.Context, code string) error {
	return saveJSON(ctx, r.db, KeyCurrency, code)
}
