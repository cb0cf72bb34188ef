package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	lineID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartLineCommand(sessionID, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	if err := errors.Join(
		wrapRequired("sessionID", sessionID.Validate()),
		wrapRequired("lineID", lineID.Validate()),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return RemoveCartLineCommand{
		sessionID: sessionID,
		lineID:    lineID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

func (c RemoveCartLineCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c RemoveCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func wrapRequired(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(param, err)
}
