package http

import (
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code          int      `json:"code"`
	Message       string   `json:"message"`
	Fields        []string `json:"fields,omitempty"`
	NeedsLocation bool     `json:"needsLocation,omitempty"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Zone struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"`
	Color    string    `json:"color"`
	Boundary []LatLng  `json:"boundary"`
}

type ZoneMatch struct {
	Matched  bool       `json:"matched"`
	ZoneID   *uuid.UUID `json:"zoneId,omitempty"`
	ZoneName string     `json:"zoneName,omitempty"`
	Price    int64      `json:"price"`
}

type NewCartLine struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
}

// CartLinePatch carries the fields to change; absent fields are kept.
type CartLinePatch struct {
	Quantity *int    `json:"quantity"`
	Size     *string `json:"size"`
}

type CartLine struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	UnitPrice  int64     `json:"unitPrice"`
	Quantity   int       `json:"quantity"`
	Size       string    `json:"size"`
	SingleSize bool      `json:"singleSize"`
	Image      string    `json:"image,omitempty"`
	Total      int64     `json:"total"`
}

type CheckoutSession struct {
	ID                   uuid.UUID  `json:"id"`
	Step                 string     `json:"step"`
	Lines                []CartLine `json:"lines"`
	ItemCount            int        `json:"itemCount"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Location             *LatLng    `json:"location,omitempty"`
	ZoneName             string     `json:"zoneName,omitempty"`
	ShippingCost         int64      `json:"shippingCost"`
	ShippingToBeArranged bool       `json:"shippingToBeArranged"`
	Subtotal             int64      `json:"subtotal"`
	Total                int64      `json:"total"`
}

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ShippingQuote struct {
	ZoneName             string `json:"zoneName,omitempty"`
	ShippingCost         int64  `json:"shippingCost"`
	ShippingToBeArranged bool   `json:"shippingToBeArranged"`
	Subtotal             int64  `json:"subtotal"`
	Total                int64  `json:"total"`
}

type Confirmation struct {
	OrderID    uuid.UUID `json:"orderId"`
	Code       string    `json:"code"`
	Total      int64     `json:"total"`
	Message    string    `json:"message"`
	HandoffURL string    `json:"handoffUrl"`
}

type OrderSummary struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	CustomerName string    `json:"customerName"`
	ZoneName     string    `json:"zoneName,omitempty"`
	Subtotal     int64     `json:"subtotal"`
	ShippingCost int64     `json:"shippingCost"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Image     string    `json:"image,omitempty"`
	Total     int64     `json:"total"`
}

type Order struct {
	ID                   uuid.UUID   `json:"id"`
	Code                 string      `json:"code"`
	FirstName            string      `json:"firstName"`
	LastName             string      `json:"lastName"`
	Status               string      `json:"status"`
	Location             *LatLng     `json:"location,omitempty"`
	ZoneName             string      `json:"zoneName,omitempty"`
	ShippingCost         int64       `json:"shippingCost"`
	ShippingToBeArranged bool        `json:"shippingToBeArranged"`
	Subtotal             int64       `json:"subtotal"`
	Total                int64       `json:"total"`
	CreatedAt            time.Time   `json:"createdAt"`
	Lines                []OrderLine `json:"lines"`
}

type StatusChange struct {
	Status string `json:"status"`
}

func toLatLng(c *kernel.Coordinate) *LatLng {
	if c == nil {
		return nil
	}
	return &LatLng{Lat: c.Lat(), Lng: c.Lng()}
}

func toZones(zones []queries.GetDeliveryZonesQueryResponse) []Zone {
	out := make([]Zone, len(zones))
	for i, z := range zones {
		boundary := make([]LatLng, len(z.Boundary))
		for j, p := range z.Boundary {
			boundary[j] = LatLng{Lat: p.Lat(), Lng: p.Lng()}
		}
		out[i] = Zone{
			ID:       z.ID.Bytes(),
			Name:     z.Name,
			Price:    z.Price,
			Color:    z.Color,
			Boundary: boundary,
		}
	}
	return out
}

func toZoneMatch(m queries.LocateZoneQueryResponse) ZoneMatch {
	resp := ZoneMatch{Matched: m.Matched, ZoneName: m.ZoneName, Price: m.Price}
	if m.Matched {
		id := m.ZoneID.Bytes()
		resp.ZoneID = &id
	}
	return resp
}

func toCartLine(l cart.Line) CartLine {
	return CartLine{
		ID:         l.ID().Bytes(),
		ProductID:  l.ProductID().Bytes(),
		Name:       l.Name(),
		UnitPrice:  l.UnitPrice(),
		Quantity:   l.Quantity(),
		Size:       l.Size(),
		SingleSize: l.IsSingleSize(),
		Image:      l.Image(),
		Total:      l.Total(),
	}
}

func toCheckoutSession(s queries.GetCheckoutSessionQueryResponse) CheckoutSession {
	lines := make([]CartLine, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = CartLine{
			ID:         l.ID.Bytes(),
			ProductID:  l.ProductID.Bytes(),
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
			Size:       l.Size,
			SingleSize: l.SingleSize,
			Image:      l.Image,
			Total:      l.Total,
		}
	}

	return CheckoutSession{
		ID:                   s.ID.Bytes(),
		Step:                 s.Step,
		Lines:                lines,
		ItemCount:            s.ItemCount,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		Location:             toLatLng(s.Location),
		ZoneName:             s.ZoneName,
		ShippingCost:         s.ShippingCost,
		ShippingToBeArranged: s.ShippingToBeArranged,
		Subtotal:             s.Subtotal,
		Total:                s.Total,
	}
}

func toShippingQuote(r commands.SelectLocationResult) ShippingQuote {
	return ShippingQuote{
		ZoneName:             r.ZoneName,
		ShippingCost:         r.ShippingCost,
		ShippingToBeArranged: r.ToBeArranged(),
		Subtotal:             r.Subtotal,
		Total:                r.Total,
	}
}

func toConfirmation(r commands.ConfirmCheckoutResult) Confirmation {
	return Confirmation{
		OrderID:    r.OrderID.Bytes(),
		Code:       r.Code,
		Total:      r.Total,
		Message:    r.Message,
		HandoffURL: r.HandoffURL,
	}
}

func toOrderSummaries(orders []queries.GetPendingOrdersQueryResponse) []OrderSummary {
	out := make([]OrderSummary, len(orders))
	for i, o := range orders {
		out[i] = OrderSummary{
			ID:           o.ID.Bytes(),
			Code:         o.Code,
			CustomerName: o.CustomerName,
			ZoneName:     o.ZoneName,
			Subtotal:     o.Subtotal,
			ShippingCost: o.ShippingCost,
			Total:        o.Total,
			CreatedAt:    o.CreatedAt,
		}
	}
	return out
}

func toOrder(o queries.GetOrderQueryResponse) Order {
	lines := make([]OrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLine{
			ProductID: l.ProductID.Bytes(),
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Image:     l.Image,
			Total:     l.Total,
		}
	}

	return Order{
		ID:                   o.ID.Bytes(),
		Code:                 o.Code,
		FirstName:            o.FirstName,
		LastName:             o.LastName,
		Status:               o.Status,
		Location:             toLatLng(o.Location),
		ZoneName:             o.ZoneName,
		ShippingCost:         o.ShippingCost,
		ShippingToBeArranged: o.ShippingToBeArranged,
		Subtotal:             o.Subtotal,
		Total:                o.Total,
		CreatedAt:            o.CreatedAt,
		Lines:                lines,
	}
}
