package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"workwise/internal/catalog"
	"workwise/internal/storage"
)

// Bookings returns the booking log, oldest first.
func (s *Service) Bookings(ctx context.Context) ([]storage.Booking, error) {
	return s.bookings.List(ctx)
}

// SearchWorkers filters the static directory; see catalog.Search.
func (s *Service) SearchWorkers(query, city, skill string) []catalog.Worker {
	return s.catalog.Search(query, city, skill)
}

// Book records a Pending booking against a catalog worker. All inputs are
// validated before anything is written. When a profile exists, the booking
// counter and the activity log are denormalized into it with a second,
// non-atomic write.
func (s *Service) Book(ctx context.Context, workerID int, customer, date string) (*storage.Booking, error) {
	customer = strings.TrimSpace(customer)
	date = strings.TrimSpace(date)
	if customer == "" {
		return nil, MissingFieldError{Field: "customer name"}
	}
	if date == "" {
		return nil, MissingFieldError{Field: "booking date"}
	}
	worker := s.catalog.Find(workerID)
	if worker == nil {
		return nil, NotFoundError{Kind: "worker", ID: strconv.Itoa(workerID)}
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	booking := storage.Booking{
		ID:         s.now().UnixMilli(),
		WorkerID:   worker.ID,
		WorkerName: worker.Name,
		Customer:   customer,
		Date:       date,
		Status:     storage.BookingStatusPending,
		PriceUSD:   worker.PriceUSD,
		Country:    profileCountry(profile),
	}
	if err := s.bookings.Append(ctx, booking); err != nil {
		return nil, err
	}

	if profile != nil {
		profile.Bookings++
		activity := fmt.Sprintf("Booked %s (%s) for %s", worker.Name, worker.Skill, date)
		profile.Activities = append([]string{activity}, profile.Activities...)
		profile.UpdatedAt = s.now()
		if err := s.profiles.Put(ctx, profile); err != nil {
			return nil, fmt.Errorf("booking saved, profile update failed: %w", err)
		}
	}
	return &booking, nil
}

func profileCountry(p *storage.Profile) string {
	if p == nil {
		return ""
	}
	return p.Country
}
