package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/metrics"
)

type ExpireSessionsCommandHandler struct {
	sessions ports.SessionStore
	ttl      time.Duration
	clock    clock.Clock
}

func NewExpireSessionsCommandHandler(sessions ports.SessionStore, ttl time.Duration, clk clock.Clock) ExpireSessionsCommandHandler {
	return ExpireSessionsCommandHandler{
		sessions: sessions,
		ttl:      ttl,
		clock:    clk,
	}
}

// Handle returns how many sessions were dropped.
func (h ExpireSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	removed, err := h.sessions.DeleteIdleSince(ctx, h.clock.Now().Add(-h.ttl))
	if err != nil {
		return 0, err
	}

	metrics.ActiveSessions.Sub(float64(removed))
	return removed, nil
}
