package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
)

// SessionStore keeps checkout sessions between requests. Access to a session
// is serialised: fn runs while the store holds the session exclusively.
type SessionStore interface {
	Add(ctx context.Context, session *checkout.Session) error

	// Update runs fn against the session and marks it as recently used.
	// Returns *errs.ObjectNotFoundError for unknown or expired ids.
	Update(ctx context.Context, id kernel.UUID, fn func(*checkout.Session) error) error

	// View runs fn against the session without touching its expiry.
	View(ctx context.Context, id kernel.UUID, fn func(*checkout.Session) error) error

	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdleSince removes sessions not used since cutoff and reports how
	// many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
