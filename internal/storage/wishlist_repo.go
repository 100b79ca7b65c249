package storage

import (
	"context"
	"database/sql"
)

// WishlistRepo holds the saved product ids. Membership is the contract;
// insertion order is kept for display only.
type WishlistRepo struct {
	db *sql.DB
}

func NewWishlistRepo(db *sql.DB) *WishlistRepo {
	return &WishlistRepo{db: db}
}

func (r *WishlistRepo) List(ctx context.Context) ([]string, error) {
	var ids []string
	if err := loadJSON(ctx, r.db, KeyWishlist, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Add inserts id unless already present. Reports whether the set changed.
func (r *WishlistRepo) Add(ctx context.Context, id string) (bool, error) {
	ids, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return false, nil
		}
	}
	ids = append(ids, id)
	if err := saveJSON(ctx, r.db, KeyWishlist, ids); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops id if present. Reports whether the set changed.
func (r *WishlistRepo) Remove(ctx context.Context, id string) (bool, error) {
	ids, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i, existing := range ids {
		if existing == id {
			ids = append(ids[:i], ids[i+1:]...)
			if err := saveJSON(ctx, r.db, KeyWishlist, ids); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
