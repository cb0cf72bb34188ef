package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository is the read side of the catalog.
type ProductRepository interface {
	// Get returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
