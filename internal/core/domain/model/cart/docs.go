// Package cart provides the shopping cart aggregate consumed by checkout.
//
// The package includes:
//   - Cart: the aggregate root holding the ordered list of lines
//   - Line: one product in one size, with its unit price and quantity
//
// Key business rules:
//   - Quantities are at least 1; a line is removed rather than set to 0
//   - Prices are non-negative integers in the store's base currency unit
//   - Adding a product in a size already present increases that line's quantity
//   - Changing a line's size onto a size already present merges the two lines
//   - Subtotal is the sum of unit price × quantity over all lines
package cart
