package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Callers Begin, defer
// Rollback and Commit explicitly.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
