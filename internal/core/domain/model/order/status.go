package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrIllegalTransition marks a status change the lifecycle does not allow.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status is the fulfilment state of an order.
type Status int

const (
	// Unknown is the zero value and never valid on a stored order.
	Unknown Status = iota
	// Pending orders were placed through checkout and await the store's reply.
	Pending
	// Confirmed orders were accepted by the store after the chat handoff.
	Confirmed
	// Shipped orders left the store.
	Shipped
	// Delivered orders reached the customer. Terminal.
	Delivered
	// Cancelled orders were abandoned before shipping. Terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "Pending",
	Confirmed: "Confirmed",
	Shipped:   "Shipped",
	Delivered: "Delivered",
	Cancelled: "Cancelled",
}

// ParseStatus maps a status name, as produced by String, back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm moves Pending to Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition(Confirmed, Pending)
}

// Ship moves Confirmed to Shipped.
func (s Status) Ship() (Status, error) {
	return s.transition(Shipped, Confirmed)
}

// Deliver moves Shipped to Delivered.
func (s Status) Deliver() (Status, error) {
	return s.transition(Delivered, Shipped)
}

// Cancel moves Pending or Confirmed to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transition(Cancelled, Pending, Confirmed)
}

// TransitionTo applies the transition leading to target, if one exists.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Confirmed:
		return s.Confirm()
	case Shipped:
		return s.Ship()
	case Delivered:
		return s.Deliver()
	case Cancelled:
		return s.Cancel()
	default:
		return Unknown, fmt.Errorf("%w: %w", ErrIllegalTransition, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a reachable status", target),
		))
	}
}

func (s Status) transition(target Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return target, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %w", ErrIllegalTransition, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot move from %s to %s", s, target),
	))
}
