package storage

import (
	"context"
	"database/sql"
)

// BookingRepo holds booking requests oldest-first; rendering may reverse.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) List(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := loadJSON(ctx, r.db, KeyBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepo) Append(ctx context.Context, b Booking) error {
	bookings, err := r.List(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	return saveJSON(ctx, r.db, KeyBookings, bookings)
}
