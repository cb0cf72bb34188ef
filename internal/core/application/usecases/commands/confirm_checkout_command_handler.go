package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/metrics"
)

// ErrOrderPersistenceFailed is returned when the order could not be saved.
// The session stays on the confirmation step with its cart intact.
var ErrOrderPersistenceFailed = errors.New("order could not be saved")

// MessageComposer renders the handoff message for a placed order.
type MessageComposer interface {
	Compose(placed *order.Order) (string, error)
}

// ConfirmCheckoutResult is what the customer needs to finish the order in chat.
type ConfirmCheckoutResult struct {
	OrderID    kernel.UUID
	Code       string
	Total      int64
	Message    string
	HandoffURL string
}

// ConfirmCheckoutCommandHandler validates the session, saves the order,
// discards the session and announces the order.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	var verr *checkout.ValidationError
//	switch {
//	case errors.As(err, &verr):
//	    // show the missing fields, reopen the map if verr.NeedsLocation()
//	case errors.Is(err, commands.ErrOrderPersistenceFailed):
//	    // ask the customer to try again
//	case err == nil:
//	    // redirect to result.HandoffURL
//	}
type ConfirmCheckoutCommandHandler struct {
	sessions   ports.SessionStore
	uowFactory OrderUoWFactory
	composer   MessageComposer
	messenger  ports.Messenger
	publisher  ports.OrderEventPublisher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewConfirmCheckoutCommandHandler(
	sessions ports.SessionStore,
	uowFactory OrderUoWFactory,
	composer MessageComposer,
	messenger ports.Messenger,
	publisher ports.OrderEventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) ConfirmCheckoutCommandHandler {
	return ConfirmCheckoutCommandHandler{
		sessions:   sessions,
		uowFactory: uowFactory,
		composer:   composer,
		messenger:  messenger,
		publisher:  publisher,
		clock:      clk,
		logger:     logger.With("component", "confirm_checkout"),
	}
}

// Handle runs the confirmation while holding the session and discards the
// session before letting go of it, so a double submit places one order. The
// message and link are built before saving; nothing is persisted when they
// fail.
func (h ConfirmCheckoutCommandHandler) Handle(ctx context.Context, cmd ConfirmCheckoutCommand) (ConfirmCheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmCheckoutResult{}, err
	}

	var (
		placed *order.Order
		result ConfirmCheckoutResult
	)

	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		o, err := s.AttemptConfirm(kernel.NewUUID(), order.NewDisplayCode(), h.clock.Now())
		if err != nil {
			recordValidationFailure(err)
			return err
		}

		message, err := h.composer.Compose(o)
		if err != nil {
			return err
		}

		link, err := h.messenger.Handoff(ctx, message)
		if err != nil {
			return err
		}

		if err = h.persist(ctx, o); err != nil {
			metrics.OrderPersistenceFailures.Inc()
			h.logger.ErrorContext(ctx, "Failed to persist order",
				"session_id", cmd.SessionID().String(), "order_id", o.ID().String(), "error", err)
			return fmt.Errorf("%w: %w", ErrOrderPersistenceFailed, err)
		}

		// Discarded while still held, so a waiting second confirm finds
		// nothing to place.
		if delErr := h.sessions.Delete(ctx, cmd.SessionID()); delErr != nil {
			h.logger.WarnContext(ctx, "Failed to discard checkout session",
				"session_id", cmd.SessionID().String(), "error", delErr)
		} else {
			metrics.ActiveSessions.Dec()
		}

		placed = o
		result = ConfirmCheckoutResult{
			OrderID:    o.ID(),
			Code:       o.Code(),
			Total:      o.Total(),
			Message:    message,
			HandoffURL: link,
		}
		return nil
	})
	if err != nil {
		return ConfirmCheckoutResult{}, err
	}

	metrics.OrdersPlaced.Inc()
	h.logger.InfoContext(ctx, "Order placed",
		"order_id", placed.ID().String(), "code", placed.Code(), "total", placed.Total())

	if h.publisher != nil {
		if pubErr := h.publisher.PublishOrderPlaced(ctx, placed); pubErr != nil {
			h.logger.WarnContext(ctx, "Failed to publish order placed event",
				"order_id", placed.ID().String(), "error", pubErr)
		}
	}

	return result, nil
}

func (h ConfirmCheckoutCommandHandler) persist(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func recordValidationFailure(err error) {
	var verr *checkout.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, f := range verr.Fields {
		metrics.ConfirmValidationFailures.WithLabelValues(string(f)).Inc()
	}
}
