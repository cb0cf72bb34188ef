package commands

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

// SelectLocationResult is the shipping quote for the selected point.
type SelectLocationResult struct {
	// ZoneName is empty when no zone contains the point.
	ZoneName     string
	ShippingCost int64
	Subtotal     int64
	Total        int64
}

// ToBeArranged reports that the point is outside every delivery zone.
func (r SelectLocationResult) ToBeArranged() bool {
	return r.ZoneName == ""
}

type SelectLocationCommandHandler struct {
	sessions ports.SessionStore
}

func NewSelectLocationCommandHandler(sessions ports.SessionStore) SelectLocationCommandHandler {
	return SelectLocationCommandHandler{sessions: sessions}
}

func (h SelectLocationCommandHandler) Handle(ctx context.Context, cmd SelectLocationCommand) (SelectLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return SelectLocationResult{}, err
	}

	var result SelectLocationResult
	err := h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		if err := s.SelectLocation(cmd.Point()); err != nil {
			return err
		}

		if z := s.MatchedZone(); z != nil {
			result.ZoneName = z.Name()
		}
		result.ShippingCost = s.ShippingCost()
		result.Subtotal = s.Subtotal()
		result.Total = s.Total()
		return nil
	})
	if err != nil {
		return SelectLocationResult{}, err
	}

	if result.ToBeArranged() {
		metrics.ZoneLookups.WithLabelValues(metrics.ZoneLookupMissed).Inc()
	} else {
		metrics.ZoneLookups.WithLabelValues(metrics.ZoneLookupMatched).Inc()
	}

	return result, nil
}
