// Package order provides the Order aggregate produced when a checkout is
// confirmed.
//
// The package includes:
//   - Order: an immutable snapshot of the cart, customer, location and pricing
//   - Status: the fulfilment state machine
//   - Customer, Shipping: value objects captured at confirmation
//   - NewDisplayCode: the short code customers quote when following up
//
// Key business rules:
//   - An order has at least one line, a customer first and last name, and a
//     non-empty display code
//   - Total is always subtotal + shipping cost
//   - New orders start Pending; status follows
//     Pending -> Confirmed -> Shipped -> Delivered, and Pending or Confirmed
//     orders may be Cancelled
package order
