package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// ChangeOrderStatusCommandHandler loads an order, applies the transition and
// saves it in one transaction. Illegal transitions leave the order untouched.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status"),
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if pubErr := h.publisher.PublishOrderStatusChanged(ctx, o); pubErr != nil {
			h.logger.WarnContext(ctx, "Failed to publish order status event",
				"order_id", o.ID().String(), "status", o.Status().String(), "error", pubErr)
		}
	}

	return nil
}
