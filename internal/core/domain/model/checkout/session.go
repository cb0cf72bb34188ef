package checkout

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/zone"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ZoneLocator finds the zone containing a point. Implementations must be
// pure: the same point and zones always give the same answer.
type ZoneLocator interface {
	Locate(point kernel.Coordinate, zones []*zone.Zone) *zone.Zone
}

// Session holds one customer's checkout state.
type Session struct {
	id      kernel.UUID
	cart    *cart.Cart
	zones   []*zone.Zone
	locator ZoneLocator

	step      Step
	firstName string
	lastName  string
	location  *kernel.Coordinate
	zone      *zone.Zone
	shipping  int64

	guard guard.ConstructorGuard
}

// NewSession opens a checkout on the review step. zones is the ordered
// snapshot used for every location lookup during the session; it is copied.
func NewSession(id kernel.UUID, c *cart.Cart, zones []*zone.Zone, locator ZoneLocator) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errs.NewValueIsRequiredError("cart")
	}
	if locator == nil {
		return nil, errs.NewValueIsRequiredError("zone locator")
	}

	snapshot := make([]*zone.Zone, 0, len(zones))
	for i, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("zones[%d]", i), err)
		}
		snapshot = append(snapshot, z)
	}

	return &Session{
		id:      id,
		cart:    c,
		zones:   snapshot,
		locator: locator,
		step:    StepReviewing,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

// Cart is the cart this session checks out. Edits to it are reflected in
// Subtotal and Total immediately.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Zones returns the zone snapshot in lookup order.
func (s *Session) Zones() []*zone.Zone {
	out := make([]*zone.Zone, len(s.zones))
	copy(out, s.zones)
	return out
}

func (s *Session) Step() Step {
	return s.step
}

func (s *Session) FirstName() string {
	return s.firstName
}

func (s *Session) LastName() string {
	return s.lastName
}

// Location returns the selected point or nil.
func (s *Session) Location() *kernel.Coordinate {
	if s.location == nil {
		return nil
	}
	loc := *s.location
	return &loc
}

// MatchedZone returns the zone containing the selected point, or nil.
func (s *Session) MatchedZone() *zone.Zone {
	return s.zone
}

// ShippingCost is the matched zone's price, or 0 when nothing matched.
func (s *Session) ShippingCost() int64 {
	return s.shipping
}

// ShippingToBeArranged reports that no zone priced the delivery.
func (s *Session) ShippingToBeArranged() bool {
	return s.zone == nil
}

func (s *Session) Subtotal() int64 {
	return s.cart.Subtotal()
}

// Total is subtotal plus shipping.
func (s *Session) Total() int64 {
	return s.cart.Subtotal() + s.shipping
}

// Proceed moves from review to confirmation. An empty cart is rejected with
// ErrCartIsEmpty and the step stays unchanged.
func (s *Session) Proceed() error {
	if s.cart.IsEmpty() {
		return ErrCartIsEmpty
	}
	s.step = StepConfirming
	return nil
}

// Back returns to review. Entered fields and location are kept.
func (s *Session) Back() {
	s.step = StepReviewing
}

// UpdateCustomerField stores a trimmed customer name part.
func (s *Session) UpdateCustomerField(field Field, value string) error {
	value = strings.TrimSpace(value)

	switch field {
	case FieldFirstName:
		s.firstName = value
	case FieldLastName:
		s.lastName = value
	default:
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a customer field", field))
	}
	return nil
}

// SelectLocation stores point and prices shipping against the zone snapshot.
// The first zone containing the point wins; with no match shipping is 0.
// Selecting the same point again yields the same state.
func (s *Session) SelectLocation(point kernel.Coordinate) error {
	if err := point.Validate(); err != nil {
		return err
	}

	s.location = &point
	s.zone = s.locator.Locate(point, s.zones)
	s.shipping = 0
	if s.zone != nil {
		s.shipping = s.zone.Price()
	}
	return nil
}

// AttemptConfirm checks that the customer entered both names and picked a
// location, then snapshots the session into a Pending order. Missing fields
// are reported together in a *ValidationError; the session is not modified
// either way.
func (s *Session) AttemptConfirm(orderID kernel.UUID, code string, now time.Time) (*order.Order, error) {
	if s.step != StepConfirming {
		return nil, ErrNotConfirming
	}
	if s.cart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	var missing []Field
	if s.firstName == "" {
		missing = append(missing, FieldFirstName)
	}
	if s.lastName == "" {
		missing = append(missing, FieldLastName)
	}
	if s.location == nil {
		missing = append(missing, FieldLocation)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	shipping := order.Shipping{Cost: s.shipping}
	if s.zone != nil {
		shipping.ZoneName = s.zone.Name()
	}

	return order.NewOrder(
		orderID,
		code,
		order.Customer{FirstName: s.firstName, LastName: s.lastName},
		s.cart.Lines(),
		s.location,
		shipping,
		now,
	)
}
