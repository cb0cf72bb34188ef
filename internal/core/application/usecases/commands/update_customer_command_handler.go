package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/ports"
)

type UpdateCustomerCommandHandler struct {
	sessions ports.SessionStore
}

func NewUpdateCustomerCommandHandler(sessions ports.SessionStore) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{sessions: sessions}
}

func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		return errors.Join(
			s.UpdateCustomerField(checkout.FieldFirstName, cmd.FirstName()),
			s.UpdateCustomerField(checkout.FieldLastName, cmd.LastName()),
		)
	})
}
