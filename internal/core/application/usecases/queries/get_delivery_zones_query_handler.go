package queries

import (
	"context"

	"storefront/internal/core/ports"
)

type GetDeliveryZonesQueryHandler struct {
	zones ports.ZoneSource
}

func NewGetDeliveryZonesQueryHandler(zones ports.ZoneSource) GetDeliveryZonesQueryHandler {
	return GetDeliveryZonesQueryHandler{zones: zones}
}

// Handle returns the zones in lookup order.
func (h GetDeliveryZonesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryZonesQuery,
) ([]GetDeliveryZonesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones, err := h.zones.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]GetDeliveryZonesQueryResponse, 0, len(zones))
	for _, z := range zones {
		resp = append(resp, GetDeliveryZonesQueryResponse{
			ID:       z.ID(),
			Name:     z.Name(),
			Price:    z.Price(),
			Color:    z.Color(),
			Boundary: z.Boundary(),
		})
	}

	return resp, nil
}
