package storage

import (
	"context"
	"database/sql"
)

// TrackerRepo keeps the full day-map. Historical days are retained but the
// callers only ever surface today's bucket.
type TrackerRepo struct {
	db *sql.DB
}

func NewTrackerRepo(db *sql.DB) *TrackerRepo {
	return &TrackerRepo{db: db}
}

func (r *TrackerRepo) Load(ctx context.Context) (map[string]TrackerDay, error) {
	days := map[string]TrackerDay{}
	if err := loadJSON(ctx, r.db, KeyTracker, &days); err != nil {
		return nil, err
	}
	if days == nil {
		days = map[string]TrackerDay{}
	}
	return days, nil
}

func (r *TrackerRepo) Save(ctx context.Context, days map[string]TrackerDay) error {
	return saveJSON(ctx, r.db, KeyTracker, days)
}

// Day returns one bucket; absent days come back empty.
func (r *TrackerRepo) Day(ctx context.Context, date string) (TrackerDay, error) {
	days, err := r.Load(ctx)
	if err != nil {
		return TrackerDay{}, err
	}
	return days[date], nil
}
