package order

import (
	"fmt"
	"math/rand/v2"
)

// DisplayCodeDigits is the length of generated display codes.
const DisplayCodeDigits = 6

// NewDisplayCode returns a random zero-padded numeric code such as "048213".
// Codes are for humans and are not unique; the order UUID is the identity.
func NewDisplayCode() string {
	return fmt.Sprintf("%0*d", DisplayCodeDigits, rand.IntN(1_000_000)) //nolint:gosec // not a secret
}
