package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order along its fulfilment lifecycle.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(wrapRequired("orderID", orderID.Validate()), target.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}
