package storage

import (
	"context"
	"database/sql"
)

// ContactRepo owns the two outbound-message lists: contact-form messages
// and free-guide email captures.
type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Messages(ctx context.Context) ([]ContactMessage, error) {
	var msgs []ContactMessage
	if err := loadJSON(ctx, r.db, KeyContactMessages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *ContactRepo) AppendMessage(ctx context.Context, m ContactMessage) error {
	msgs, err := r.Messages(ctx)
	if err != nil {
		return err
	}
	msgs = append(msgs, m)
	return saveJSON(ctx, r.db, KeyContactMessages, msgs)
}

func (r *ContactRepo) Leads(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	if err := loadJSON(ctx, r.db, KeyLeads, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *ContactRepo) AppendLead(ctx context.Context, l Lead) error {
	leads, err := r.Leads(ctx)
	if err != nil {
		return err
	}
	leads = append(leads, l)
	return saveJSON(ctx, r.db, KeyLeads, leads)
}
