// Package kernel provides the shared value objects of the storefront domain.
//
// The package includes:
//   - UUID: a validated wrapper around github.com/google/uuid
//   - Coordinate: a WGS 84 latitude/longitude pair picked on the checkout map
//
// Both are immutable and their zero values fail validation, so domain objects
// holding them can detect fields that were never set through a constructor.
package kernel
