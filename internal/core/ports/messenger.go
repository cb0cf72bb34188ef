package ports

import "context"

// Messenger hands a composed order message to the store's chat channel and
// returns the link the customer opens to send it.
type Messenger interface {
	Handoff(ctx context.Context, message string) (string, error)
}
