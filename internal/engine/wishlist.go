package engine

import (
	"context"
	"strings"
)

// Wishlist returns the saved product ids in insertion order.
func (s *Service) Wishlist(ctx context.Context) ([]string, error) {
	return s.wishlist.List(ctx)
}

// AddToWishlist saves a product id. Adding an id that is already present
// reports added=false and changes nothing.
func (s *Service) AddToWishlist(ctx context.Context, id string) (added bool, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, MissingFieldError{Field: "product id"}
	}
	return s.wishlist.Add(ctx, id)
}

// RemoveFromWishlist drops a saved id; removing an absent id is a no-op.
func (s *Service) RemoveFromWishlist(ctx context.Context, id string) (removed bool, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, MissingFieldError{Field: "product id"}
	}
	return s.wishlist.Remove(ctx, id)
}
