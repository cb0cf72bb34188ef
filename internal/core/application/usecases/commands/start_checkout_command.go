package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrStartCheckoutCommandIsNotConstructed = errors.New(
	"StartCheckoutCommand must be created via NewStartCheckoutCommand constructor",
)

// StartCheckoutCommand opens a checkout session with an empty cart.
type StartCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartCheckoutCommand(sessionID kernel.UUID) (StartCheckoutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return StartCheckoutCommand{}, err
	}

	return StartCheckoutCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c StartCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrStartCheckoutCommandIsNotConstructed)
}

func (c StartCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
