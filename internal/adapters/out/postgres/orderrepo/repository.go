package orderrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Orders and their lines live in separate tables; a placed order is written
// once and afterwards only its status column changes.
type GormOrderRepository struct {
	db       *gorm.DB
	recorder WriteRecorder
}

// WriteRecorder is told about every order the repository wrote.
type WriteRecorder interface {
	RecordWrite(o *order.Order)
}

// NewGormOrderRepository returns a repository; recorder may be nil.
func NewGormOrderRepository(db *gorm.DB, recorder WriteRecorder) *GormOrderRepository {
	return &GormOrderRepository{db: db, recorder: recorder}
}

// Add inserts the order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.recordWrite(aggregate)
	return nil
}

// Update writes the status. The rest of an order never changes after it is
// placed, so the lines are not rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	switch {
	case result.Error != nil:
		return result.Error
	case result.RowsAffected == 0:
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.recordWrite(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) recordWrite(o *order.Order) {
	if r.recorder != nil {
		r.recorder.RecordWrite(o)
	}
}
