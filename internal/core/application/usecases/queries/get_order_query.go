package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type OrderLineResponse struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice int64
	Quantity  int
	Size      string
	Image     string
	Total     int64
}

type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	Code                 string
	FirstName            string
	LastName             string
	Status               string
	Location             *kernel.Coordinate
	ZoneName             string
	ShippingCost         int64
	ShippingToBeArranged bool
	Subtotal             int64
	Total                int64
	CreatedAt            time.Time
	Lines                []OrderLineResponse
}
