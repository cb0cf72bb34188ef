// Package productrepo reads the product catalog.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductDTO struct {
	ID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name   string         `gorm:"type:varchar(255);not null"`
	Price  int64          `gorm:"type:bigint;not null"`
	Sizes  pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Image  string         `gorm:"type:varchar(1024);not null;default:''"`
	Active bool           `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID().Bytes(),
		Name:   p.Name(),
		Price:  p.Price(),
		Sizes:  pq.StringArray(p.Sizes()),
		Image:  p.Image(),
		Active: p.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.NewProduct(id, dto.Name, dto.Price, dto.Sizes, dto.Image, dto.Active)
}
