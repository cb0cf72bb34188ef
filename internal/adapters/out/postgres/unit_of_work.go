// Package postgres provides the GORM unit of work and the schema migration.
// Repositories returned by a unit of work run inside its transaction once
// Begin was called, and against the plain connection otherwise.
//
// Usage:
//
//	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory gives every command its own unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction and remembers the orders its
// repositories wrote, so callers can tell what a commit actually saved.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	pending []*order.Order
	saved   []*order.Order
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction without an active transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil {
		uow.saved = append(uow.saved, uow.pending...)
	}
	uow.pending = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction without an active transaction,
// which is the normal outcome of the deferred Rollback after a Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.pending = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// RecordWrite is called by the order repository after a successful write.
// Writes outside a transaction count as saved immediately.
func (uow *GormUnitOfWork) RecordWrite(o *order.Order) {
	if uow.tx == nil {
		uow.saved = append(uow.saved, o)
		return
	}
	uow.pending = append(uow.pending, o)
}

// SavedOrderIDs lists, in write order, the orders made durable so far.
// Writes discarded by Rollback are not included.
func (uow *GormUnitOfWork) SavedOrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.saved))
	for _, o := range uow.saved {
		ids = append(ids, o.ID())
	}
	return ids
}
