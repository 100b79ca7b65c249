package engine

import (
	"context"
	"strings"

	"workwise/internal/storage"
)

// SendMessage stores a contact-form message. All three fields are
// required; nothing is written when any is missing.
func (s *Service) SendMessage(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	switch {
	case name == "":
		return MissingFieldError{Field: "name"}
	case email == "":
		return MissingFieldError{Field: "email"}
	case message == "":
		return MissingFieldError{Field: "message"}
	}
	return s.contacts.AppendMessage(ctx, storage.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: s.now(),
	})
}

// CaptureLead stores a free-guide email signup.
func (s *Service) CaptureLead(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return MissingFieldError{Field: "email"}
	}
	return s.contacts.AppendLead(ctx, storage.Lead{Email: email, CreatedAt: s.now()})
}
