package queries

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/ports"
)

type GetCheckoutSessionQueryHandler struct {
	sessions ports.SessionStore
}

func NewGetCheckoutSessionQueryHandler(sessions ports.SessionStore) GetCheckoutSessionQueryHandler {
	return GetCheckoutSessionQueryHandler{sessions: sessions}
}

func (h GetCheckoutSessionQueryHandler) Handle(
	ctx context.Context,
	query GetCheckoutSessionQuery,
) (GetCheckoutSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutSessionQueryResponse{}, err
	}

	var resp GetCheckoutSessionQueryResponse
	err := h.sessions.View(ctx, query.SessionID(), func(s *checkout.Session) error {
		resp = sessionResponse(s)
		return nil
	})
	if err != nil {
		return GetCheckoutSessionQueryResponse{}, err
	}

	return resp, nil
}

func sessionResponse(s *checkout.Session) GetCheckoutSessionQueryResponse {
	lines := s.Cart().Lines()
	resp := GetCheckoutSessionQueryResponse{
		ID:                   s.ID(),
		Step:                 s.Step().String(),
		Lines:                make([]CartLineResponse, 0, len(lines)),
		ItemCount:            s.Cart().ItemCount(),
		FirstName:            s.FirstName(),
		LastName:             s.LastName(),
		Location:             s.Location(),
		ShippingCost:         s.ShippingCost(),
		ShippingToBeArranged: s.ShippingToBeArranged(),
		Subtotal:             s.Subtotal(),
		Total:                s.Total(),
	}

	if z := s.MatchedZone(); z != nil {
		resp.ZoneName = z.Name()
	}

	for _, l := range lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ID:         l.ID(),
			ProductID:  l.ProductID(),
			Name:       l.Name(),
			UnitPrice:  l.UnitPrice(),
			Quantity:   l.Quantity(),
			Size:       l.Size(),
			SingleSize: l.IsSingleSize(),
			Image:      l.Image(),
			Total:      l.Total(),
		})
	}

	return resp
}
