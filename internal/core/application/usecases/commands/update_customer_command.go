package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand stores the customer's name. Blank values are allowed
// here; they are reported when the customer confirms.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(sessionID kernel.UUID, firstName, lastName string) (UpdateCustomerCommand, error) {
	if err := wrapRequired("sessionID", sessionID.Validate()); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		sessionID: sessionID,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c UpdateCustomerCommand) FirstName() string {
	return c.firstName
}

func (c UpdateCustomerCommand) LastName() string {
	return c.lastName
}
