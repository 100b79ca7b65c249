package engine

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"workwise/internal/storage"
)

// ProfileUpdate carries the fields a save wants to change. Nil fields keep
// their stored value (field-wise last-write-wins merge).
type ProfileUpdate struct {
	Name    *string
	Country *string
	DOB     *string
}

// Profile returns the signed-in record, or nil for the guest state.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	return s.profiles.Get(ctx)
}

// SignIn creates (or refreshes) the demo profile. No real authentication,
// it just materializes the record.
func (s *Service) SignIn(ctx context.Context, name, country string) (*storage.Profile, error) {
	return s.SaveProfile(ctx, ProfileUpdate{Name: &name, Country: &country})
}

// SaveProfile merges the partial over the stored record (or a default
// skeleton), stamps updatedAt, and persists. Fields are trimmed; there is
// no further validation — an empty name renders as "Guest" but is stored
// verbatim.
func (s *Service) SaveProfile(ctx context.Context, upd ProfileUpdate) (*storage.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &storage.Profile{Activities: []string{}}
	}
	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Country != nil {
		p.Country = strings.TrimSpace(*upd.Country)
	}
	if upd.DOB != nil {
		p.DOB = strings.TrimSpace(*upd.DOB)
	}
	p.UpdatedAt = s.now()
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AttachPhoto reads an image file into an embedded data URI and merges it
// into the profile. At most one attach runs at a time; an overlapping call
// is rejected rather than allowed to race the completion write.
func (s *Service) AttachPhoto(ctx context.Context, path string) (*storage.Profile, error) {
	if !s.photoGuard.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer s.photoGuard.Release(1)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	mime := http.DetectContentType(data)
	uri := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)

	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &storage.Profile{Activities: []string{}}
	}
	p.Photo = uri
	p.UpdatedAt = s.now()
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ClearProfile signs the demo user out by deleting the record.
func (s *Service) ClearProfile(ctx context.Context) error {
	return s.profiles.Delete(ctx)
}
