package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrChangeCheckoutStepCommandIsNotConstructed = errors.New(
	"ChangeCheckoutStepCommand must be created via NewChangeCheckoutStepCommand constructor",
)

// ChangeCheckoutStepCommand moves a session to the review or confirmation step.
type ChangeCheckoutStepCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	target    checkout.Step

	guard guard.ConstructorGuard
}

func NewChangeCheckoutStepCommand(sessionID kernel.UUID, target checkout.Step) (ChangeCheckoutStepCommand, error) {
	var targetErr error
	if target != checkout.StepReviewing && target != checkout.StepConfirming {
		targetErr = errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%s is not a checkout step", target))
	}

	if err := errors.Join(wrapRequired("sessionID", sessionID.Validate()), targetErr); err != nil {
		return ChangeCheckoutStepCommand{}, err
	}

	return ChangeCheckoutStepCommand{
		sessionID: sessionID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCheckoutStepCommand) Validate() error {
	return c.guard.Validate(ErrChangeCheckoutStepCommandIsNotConstructed)
}

func (c ChangeCheckoutStepCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ChangeCheckoutStepCommand) Target() checkout.Step {
	return c.target
}
