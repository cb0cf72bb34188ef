package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrConfirmCheckoutCommandIsNotConstructed = errors.New(
	"ConfirmCheckoutCommand must be created via NewConfirmCheckoutCommand constructor",
)

// ConfirmCheckoutCommand places the order for a session on the confirmation step.
type ConfirmCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmCheckoutCommand(sessionID kernel.UUID) (ConfirmCheckoutCommand, error) {
	if err := wrapRequired("sessionID", sessionID.Validate()); err != nil {
		return ConfirmCheckoutCommand{}, err
	}

	return ConfirmCheckoutCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCheckoutCommandIsNotConstructed)
}

func (c ConfirmCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
