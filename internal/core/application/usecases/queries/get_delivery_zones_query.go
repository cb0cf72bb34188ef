package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetDeliveryZonesQueryIsNotConstructed = errors.New(
	"GetDeliveryZonesQuery must be created via NewGetDeliveryZonesQuery constructor",
)

// GetDeliveryZonesQuery lists the zones drawn on the checkout map.
type GetDeliveryZonesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryZonesQuery() GetDeliveryZonesQuery {
	return GetDeliveryZonesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryZonesQueryIsNotConstructed)
}

type GetDeliveryZonesQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Price    int64
	Color    string
	Boundary []kernel.Coordinate
}
