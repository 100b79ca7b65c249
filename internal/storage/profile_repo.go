package storage

import (
	"context"
	"database/sql"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get returns the profile record, or nil when signed out (or when the
// stored text is unreadable, which is treated the same way).
func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	var p *Profile
	if err := loadJSON(ctx, r.db, KeyProfile, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepo) Put(ctx context.Context, p *Profile) error {
	return saveJSON(ctx, r.db, KeyProfile, p)
}

func (r *ProfileRepo) Delete(ctx context.Context) error {
	return deleteKey(ctx, r.db, KeyProfile)
}
