package commands

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/ports"
)

type RemoveCartLineCommandHandler struct {
	sessions ports.SessionStore
}

func NewRemoveCartLineCommandHandler(sessions ports.SessionStore) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{sessions: sessions}
}

// Handle removes the line. Removing the last line does not move the session
// back to review; confirming an empty cart is refused instead.
func (h RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		return s.Cart().Remove(cmd.LineID())
	})
}
