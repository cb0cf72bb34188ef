package commands

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/ports"
)

// ChangeCheckoutStepCommandHandler proceeds to confirmation or goes back to
// review. Proceeding with an empty cart fails with checkout.ErrCartIsEmpty.
type ChangeCheckoutStepCommandHandler struct {
	sessions ports.SessionStore
}

func NewChangeCheckoutStepCommandHandler(sessions ports.SessionStore) ChangeCheckoutStepCommandHandler {
	return ChangeCheckoutStepCommandHandler{sessions: sessions}
}

func (h ChangeCheckoutStepCommandHandler) Handle(ctx context.Context, cmd ChangeCheckoutStepCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		if cmd.Target() == checkout.StepConfirming {
			return s.Proceed()
		}
		s.Back()
		return nil
	})
}
