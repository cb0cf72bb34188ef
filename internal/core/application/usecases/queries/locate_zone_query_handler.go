package queries

import (
	"context"

	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"
)

type LocateZoneQueryHandler struct {
	zones ports.ZoneSource
}

func NewLocateZoneQueryHandler(zones ports.ZoneSource) LocateZoneQueryHandler {
	return LocateZoneQueryHandler{zones: zones}
}

func (h LocateZoneQueryHandler) Handle(ctx context.Context, query LocateZoneQuery) (LocateZoneQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LocateZoneQueryResponse{}, err
	}

	zones, err := h.zones.GetAll(ctx)
	if err != nil {
		return LocateZoneQueryResponse{}, err
	}

	z := services.NewGeofence().Locate(query.Point(), zones)
	if z == nil {
		metrics.ZoneLookups.WithLabelValues(metrics.ZoneLookupMissed).Inc()
		return LocateZoneQueryResponse{}, nil
	}

	metrics.ZoneLookups.WithLabelValues(metrics.ZoneLookupMatched).Inc()
	return LocateZoneQueryResponse{
		Matched:  true,
		ZoneID:   z.ID(),
		ZoneName: z.Name(),
		Price:    z.Price(),
	}, nil
}
