package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle events to other services.
// Delivery is best effort.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, placed *order.Order) error
	PublishOrderStatusChanged(ctx context.Context, changed *order.Order) error
}
