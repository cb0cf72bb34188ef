package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

// StartCheckoutCommandHandler snapshots the current delivery zones into a
// new session so that every lookup during the checkout sees the same list.
type StartCheckoutCommandHandler struct {
	zones    ports.ZoneSource
	sessions ports.SessionStore
}

func NewStartCheckoutCommandHandler(zones ports.ZoneSource, sessions ports.SessionStore) StartCheckoutCommandHandler {
	return StartCheckoutCommandHandler{
		zones:    zones,
		sessions: sessions,
	}
}

func (h StartCheckoutCommandHandler) Handle(ctx context.Context, cmd StartCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	zones, err := h.zones.GetAll(ctx)
	if err != nil {
		return err
	}

	session, err := checkout.NewSession(cmd.SessionID(), cart.NewCart(), zones, services.NewGeofence())
	if err != nil {
		return err
	}

	if err = h.sessions.Add(ctx, session); err != nil {
		return err
	}

	metrics.ActiveSessions.Inc()
	return nil
}
