// Package product holds the read-only catalog entry a cart line is priced from.
package product
