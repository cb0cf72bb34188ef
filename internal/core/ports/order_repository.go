// Package ports defines the contracts between the checkout core and the
// infrastructure that stores, caches, publishes and hands off its data.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line snapshot.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines. Returns *errs.ObjectNotFoundError
	// when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
