package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const maxDisplayCodeLength = 16

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderHasNoLines       = errs.NewValueIsRequiredError("lines")
)

// Customer is the name entered at checkout.
type Customer struct {
	FirstName string
	LastName  string
}

// FullName joins first and last name.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Shipping records the zone matched at checkout and its price.
// A zero Shipping means no zone matched.
type Shipping struct {
	ZoneName string
	Cost     int64
}

// ToBeArranged reports that no zone matched, so the price is agreed in chat.
func (s Shipping) ToBeArranged() bool {
	return s.ZoneName == "" && s.Cost == 0
}

// Order is the aggregate handed to persistence once checkout is confirmed.
// Everything except the status is fixed at construction.
type Order struct {
	id        kernel.UUID
	code      string
	customer  Customer
	lines     []cart.Line
	location  *kernel.Coordinate
	shipping  Shipping
	subtotal  int64
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder builds a Pending order. Lines are copied; location may be nil.
//
// Example:
//
//	o, err := order.NewOrder(
//	    kernel.NewUUID(),
//	    order.NewDisplayCode(),
//	    order.Customer{FirstName: "Ana", LastName: "Gómez"},
//	    c.Lines(),
//	    &point,
//	    order.Shipping{ZoneName: "Centro", Cost: 8000},
//	    clock.Now(),
//	)
func NewOrder(
	id kernel.UUID,
	code string,
	customer Customer,
	lines []cart.Line,
	location *kernel.Coordinate,
	shipping Shipping,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, code, customer, lines, location, shipping, Pending, createdAt)
}

// RestoreOrder rebuilds an order from storage with an arbitrary valid status.
func RestoreOrder(
	id kernel.UUID,
	code string,
	customer Customer,
	lines []cart.Line,
	location *kernel.Coordinate,
	shipping Shipping,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customer),
		o.setLines(lines),
		o.setLocation(location),
		o.setShipping(shipping),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code is the short reference shown to the customer.
func (o *Order) Code() string {
	return o.code
}

func (o *Order) Customer() Customer {
	return o.customer
}

// Lines returns a copy of the line snapshot.
func (o *Order) Lines() []cart.Line {
	out := make([]cart.Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Location returns the delivery point, or nil when none was captured.
func (o *Order) Location() *kernel.Coordinate {
	if o.location == nil {
		return nil
	}
	loc := *o.location
	return &loc
}

func (o *Order) Shipping() Shipping {
	return o.shipping
}

func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// Total is subtotal plus shipping cost.
func (o *Order) Total() int64 {
	return o.subtotal + o.shipping.Cost
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus applies a fulfilment transition.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > maxDisplayCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("%d characters, at most %d allowed", len(code), maxDisplayCodeLength),
		)
	}
	o.code = code
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	customer.FirstName = strings.TrimSpace(customer.FirstName)
	customer.LastName = strings.TrimSpace(customer.LastName)

	var err error
	if customer.FirstName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("firstName"))
	}
	if customer.LastName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("lastName"))
	}
	if err != nil {
		return err
	}

	o.customer = customer
	return nil
}

func (o *Order) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	var subtotal int64
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d]", i), err)
		}
		subtotal += l.Total()
	}

	o.lines = make([]cart.Line, len(lines))
	copy(o.lines, lines)
	o.subtotal = subtotal
	return nil
}

func (o *Order) setLocation(location *kernel.Coordinate) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	loc := *location
	o.location = &loc
	return nil
}

func (o *Order) setShipping(shipping Shipping) error {
	if shipping.Cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCost", fmt.Errorf("%d is negative", shipping.Cost))
	}
	shipping.ZoneName = strings.TrimSpace(shipping.ZoneName)
	o.shipping = shipping
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
