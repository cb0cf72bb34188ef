// Package errs provides standardized error types for the storefront service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details (parameter name, value, cause)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Transport adapters classify failures with errors.Is against the sentinels
// and render the struct details to the client.
package errs
