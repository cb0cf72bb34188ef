// Package checkout implements the two-step checkout state machine.
//
// A Session starts in StepReviewing, where the cart can be edited. Proceed
// moves it to StepConfirming, where the customer enters a name and picks a
// delivery point on the map; Back returns to review without losing those
// fields. Picking a point prices shipping against the session's zone snapshot
// through a ZoneLocator. AttemptConfirm validates the entered data and
// produces the order snapshot.
//
// Totals are derived on every read (subtotal from the cart plus the current
// shipping cost) so they can never go stale after a cart or location change.
//
// A Session belongs to one customer and is not safe for concurrent use.
package checkout
