package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand puts a product into the session's cart. Price and name
// come from the catalog, never from the client.
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID kernel.UUID
	quantity  int
	size      string

	guard guard.ConstructorGuard
}

func NewAddCartLineCommand(sessionID, productID kernel.UUID, quantity int, size string) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		size:  size,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

func (c AddCartLineCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c AddCartLineCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

// Size is the requested size; empty for one-size products.
func (c AddCartLineCommand) Size() string {
	return c.size
}

func (c *AddCartLineCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sessionID", err)
	}
	c.sessionID = id
	return nil
}

func (c *AddCartLineCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	c.productID = id
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	c.quantity = quantity
	return nil
}
