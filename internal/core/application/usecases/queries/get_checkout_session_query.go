// Package queries contains read-only operations. Order queries read the
// database directly with SQL; checkout and zone queries read the session
// store and the zone source.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCheckoutSessionQueryIsNotConstructed = errors.New(
	"GetCheckoutSessionQuery must be created via NewGetCheckoutSessionQuery constructor",
)

type GetCheckoutSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCheckoutSessionQuery(sessionID kernel.UUID) (GetCheckoutSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetCheckoutSessionQuery{}, err
	}
	return GetCheckoutSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCheckoutSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutSessionQueryIsNotConstructed)
}

func (q GetCheckoutSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// CartLineResponse is one cart line with its derived total.
type CartLineResponse struct {
	ID         kernel.UUID
	ProductID  kernel.UUID
	Name       string
	UnitPrice  int64
	Quantity   int
	Size       string
	SingleSize bool
	Image      string
	Total      int64
}

// GetCheckoutSessionQueryResponse is the state the checkout screens render.
// Totals are computed at read time.
type GetCheckoutSessionQueryResponse struct {
	ID                   kernel.UUID
	Step                 string
	Lines                []CartLineResponse
	ItemCount            int
	FirstName            string
	LastName             string
	Location             *kernel.Coordinate
	ZoneName             string
	ShippingCost         int64
	ShippingToBeArranged bool
	Subtotal             int64
	Total                int64
}
