package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists orders awaiting the store's confirmation,
// newest first.
//
// Example:
//
//	orders, err := handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("#%s %s %d\n", o.Code, o.CustomerName, o.Total)
//	}
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

type GetPendingOrdersQueryResponse struct {
	ID           kernel.UUID
	Code         string
	CustomerName string
	ZoneName     string
	Subtotal     int64
	ShippingCost int64
	Total        int64
	CreatedAt    time.Time
}
