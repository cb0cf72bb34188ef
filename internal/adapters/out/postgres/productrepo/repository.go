package productrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add stores a catalog entry. The catalog is managed elsewhere; Add is used
// for seeding.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	// Select("*") writes Active=false instead of the column default.
	return r.db.WithContext(ctx).Select("*").Create(&dto).Error
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
