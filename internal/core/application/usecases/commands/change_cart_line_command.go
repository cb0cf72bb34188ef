package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrChangeCartLineCommandIsNotConstructed = errors.New(
	"ChangeCartLineCommand must be created via NewChangeCartLineCommand constructor",
)

// ChangeCartLineCommand edits the quantity, the size, or both of one line.
// A nil field is left unchanged; at least one must be set.
type ChangeCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	lineID    kernel.UUID
	quantity  *int
	size      *string

	guard guard.ConstructorGuard
}

func NewChangeCartLineCommand(sessionID, lineID kernel.UUID, quantity *int, size *string) (ChangeCartLineCommand, error) {
	cmd := ChangeCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
		cmd.setChanges(quantity, size),
	); err != nil {
		return ChangeCartLineCommand{}, err
	}

	return cmd, nil
}

func (c ChangeCartLineCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartLineCommandIsNotConstructed)
}

func (c ChangeCartLineCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ChangeCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new quantity and whether one was requested.
func (c ChangeCartLineCommand) Quantity() (int, bool) {
	if c.quantity == nil {
		return 0, false
	}
	return *c.quantity, true
}

// Size returns the new size and whether one was requested.
func (c ChangeCartLineCommand) Size() (string, bool) {
	if c.size == nil {
		return "", false
	}
	return *c.size, true
}

func (c *ChangeCartLineCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sessionID", err)
	}
	c.sessionID = id
	return nil
}

func (c *ChangeCartLineCommand) setLineID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lineID", err)
	}
	c.lineID = id
	return nil
}

func (c *ChangeCartLineCommand) setChanges(quantity *int, size *string) error {
	if quantity == nil && size == nil {
		return errs.NewValueIsRequiredError("quantity or size")
	}
	if quantity != nil {
		if *quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", *quantity))
		}
		q := *quantity
		c.quantity = &q
	}
	if size != nil {
		s := *size
		c.size = &s
	}
	return nil
}
