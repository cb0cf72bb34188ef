// Package natsadapter publishes order events to NATS JetStream.
package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"

	"github.com/nats-io/nats.go"
)

const (
	publishTimeout = 5 * time.Second

	StreamName = "STOREFRONT_ORDERS"

	SubjectOrderPlaced        = "storefront.order.placed"
	SubjectOrderStatusChanged = "storefront.order.status_changed"
)

var _ ports.OrderEventPublisher = (*OrderPublisher)(nil)

// OrderEvent is the payload published for every order event.
type OrderEvent struct {
	OrderID      string       `json:"orderId"`
	Code         string       `json:"code"`
	Status       string       `json:"status"`
	CustomerName string       `json:"customerName"`
	ZoneName     string       `json:"zoneName,omitempty"`
	ShippingCost int64        `json:"shippingCost"`
	Subtotal     int64        `json:"subtotal"`
	Total        int64        `json:"total"`
	Lines        []EventLine  `json:"lines,omitempty"`
	Location     *EventLatLng `json:"location,omitempty"`
	OccurredAt   time.Time    `json:"occurredAt"`
}

type EventLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

type EventLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderPublisher implements ports.OrderEventPublisher.
type OrderPublisher struct {
	conn *nats.Conn
	js   nats.JetStreamContext
	now  func() time.Time
}

// NewOrderPublisher connects to NATS and makes sure the order stream exists.
func NewOrderPublisher(url string) (*OrderPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("storefront"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	cfg := &nats.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{"storefront.order.>"},
		Retention: nats.LimitsPolicy,
		MaxAge:    7 * 24 * time.Hour,
		Storage:   nats.FileStorage,
	}
	if _, err = js.AddStream(cfg); err != nil {
		if _, err = js.UpdateStream(cfg); err != nil {
			conn.Close()
			return nil, fmt.Errorf("ensure stream %s: %w", StreamName, err)
		}
	}

	return &OrderPublisher{conn: conn, js: js, now: time.Now}, nil
}

func (p *OrderPublisher) PublishOrderPlaced(ctx context.Context, placed *order.Order) error {
	return p.publish(ctx, SubjectOrderPlaced, placed, true)
}

func (p *OrderPublisher) PublishOrderStatusChanged(ctx context.Context, changed *order.Order) error {
	return p.publish(ctx, SubjectOrderStatusChanged, changed, false)
}

// IsConnected reports the connection state for readiness checks.
func (p *OrderPublisher) IsConnected() bool {
	return p.conn.IsConnected()
}

// Close drains and closes the connection.
func (p *OrderPublisher) Close() {
	_ = p.conn.Drain()
}

func (p *OrderPublisher) publish(ctx context.Context, subject string, o *order.Order, withLines bool) error {
	if err := o.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(NewOrderEvent(o, withLines, p.now().UTC()))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// Msg-Id lets JetStream drop duplicates of the same transition.
	msgID := fmt.Sprintf("%s:%s", o.ID(), o.Status())
	if _, err = p.js.Publish(subject, data, nats.Context(ctx), nats.MsgId(msgID)); err != nil {
		metrics.EventPublishFailures.WithLabelValues(subject).Inc()
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// NewOrderEvent maps an order to its wire payload.
func NewOrderEvent(o *order.Order, withLines bool, occurredAt time.Time) OrderEvent {
	ev := OrderEvent{
		OrderID:      o.ID().String(),
		Code:         o.Code(),
		Status:       o.Status().String(),
		CustomerName: o.Customer().FullName(),
		ZoneName:     o.Shipping().ZoneName,
		ShippingCost: o.Shipping().Cost,
		Subtotal:     o.Subtotal(),
		Total:        o.Total(),
		OccurredAt:   occurredAt,
	}

	if loc := o.Location(); loc != nil {
		ev.Location = &EventLatLng{Lat: loc.Lat(), Lng: loc.Lng()}
	}

	if withLines {
		for _, l := range o.Lines() {
			ev.Lines = append(ev.Lines, EventLine{
				ProductID: l.ProductID().String(),
				Name:      l.Name(),
				Size:      l.Size(),
				Quantity:  l.Quantity(),
				UnitPrice: l.UnitPrice(),
			})
		}
	}

	return ev
}
