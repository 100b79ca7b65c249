package storage

import (
	"context"
	"database/sql"
)

// OrderRepo is the append-only transaction log. Newest order first; entries
// are never mutated or deleted once recorded.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := loadJSON(ctx, r.db, KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Record prepends the order and rewrites the full list. O(n) per insert,
// fine for the expected handful of orders.
func (r *OrderRepo) Record(ctx context.Context, o Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	orders = append([]Order{o}, orders...)
	return saveJSON(ctx, r.db, KeyOrders, orders)
}
