// Package zone models the delivery zones shipping prices are taken from.
//
// A Zone is a named polygon with a flat shipping price. Zones are maintained
// by the back-office and are read-only to checkout: a checkout session works
// on an ordered snapshot of them for its whole lifetime.
//
// Key business rules:
//   - A zone has a valid identifier, a non-empty name and a non-negative price
//   - The boundary has at least MinBoundaryPoints vertices; closure is implicit,
//     so the first vertex must not be repeated at the end
//   - Membership is decided by ray casting (see Zone.Contains)
package zone
