// Package commands contains the operations that change checkout or order
// state. Every command is built through a validating constructor and run by
// a handler; handlers that write orders do so inside a unit of work.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order writes.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   if err := uow.OrderRepository().Add(ctx, o); err != nil {
	//       return err
	//   }
	//   return uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
