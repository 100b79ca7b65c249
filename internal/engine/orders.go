package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workwise/internal/catalog"
	"workwise/internal/storage"
)

// Orders returns the transaction log, most recent first.
func (s *Service) Orders(ctx context.Context) ([]storage.Order, error) {
	return s.orders.List(ctx)
}

// Checkout drives the payment capability for the default product and
// records a completed order on approval. A charge failure records
// nothing. Overlapping checkouts are rejected so a double-fired approval
// cannot append a duplicate order.
func (s *Service) Checkout(ctx context.Context) (*storage.Order, error) {
	if s.provider == nil {
		s.log.Warn("checkout skipped: no payment provider configured")
		return nil, ErrPaymentUnavailable
	}
	if !s.checkoutGuard.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer s.checkoutGuard.Release(1)

	product := catalog.DefaultProduct
	charge, err := s.provider.CreateCharge(ctx, product.PriceUSD, product.Title)
	if err != nil {
		return nil, fmt.Errorf("create charge: %w", err)
	}
	approval, err := s.provider.Await(ctx, charge)
	if err != nil {
		s.log.Warn("charge failed", zap.String("charge_id", charge.ID), zap.Error(err))
		return nil, fmt.Errorf("charge: %w", err)
	}

	f, err := s.formatter(ctx)
	if err != nil {
		return nil, err
	}
	order := storage.Order{
		ID: uuid.NewString(),
		Items: []storage.OrderItem{{
			ProductID: product.ID,
			Title:     product.Title,
			PriceUSD:  product.PriceUSD,
			Qty:       1,
		}},
		AmountUSD:     product.PriceUSD,
		AmountDisplay: f.Format(product.PriceUSD),
		Currency:      string(f.Code()),
		Provider:      s.provider.Name(),
		Status:        storage.StatusCompleted,
		CreatedAt:     s.now(),
	}
	if approval.PayerName != "" || approval.PayerEmail != "" {
		order.Payer = &storage.Payer{Name: approval.PayerName, Email: approval.PayerEmail}
	}
	if err := s.orders.Record(ctx, order); err != nil {
		return nil, err
	}
	s.log.Info("order recorded",
		zap.String("order_id", order.ID),
		zap.String("provider", order.Provider),
		zap.String("display", order.AmountDisplay))
	return &order, nil
}

// Preorder records a reserved order without touching the provider.
func (s *Service) Preorder(ctx context.Context) (*storage.Order, error) {
	f, err := s.formatter(ctx)
	if err != nil {
		return nil, err
	}
	product := catalog.DefaultProduct
	order := storage.Order{
		ID: uuid.NewString(),
		Items: []storage.OrderItem{{
			ProductID: product.ID,
			Title:     product.Title,
			PriceUSD:  product.PriceUSD,
			Qty:       1,
		}},
		AmountUSD:     product.PriceUSD,
		AmountDisplay: f.Format(product.PriceUSD),
		Currency:      string(f.Code()),
		Provider:      storage.ProviderPreorder,
		Status:        storage.StatusReserved,
		CreatedAt:     s.now(),
	}
	if err := s.orders.Record(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}
