package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// AddCartLineCommandHandler prices the requested product from the catalog
// and adds it to the cart, merging with an existing line of the same size.
type AddCartLineCommandHandler struct {
	products ports.ProductRepository
	sessions ports.SessionStore
}

func NewAddCartLineCommandHandler(products ports.ProductRepository, sessions ports.SessionStore) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		products: products,
		sessions: sessions,
	}
}

// Handle returns the resulting cart line. After a merge it is the existing
// line with the combined quantity.
func (h AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) (cart.Line, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Line{}, err
	}

	p, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return cart.Line{}, err
	}

	line, err := p.NewCartLine(kernel.NewUUID(), cmd.Quantity(), cmd.Size())
	if err != nil {
		return cart.Line{}, err
	}

	var stored cart.Line
	err = h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		var addErr error
		stored, addErr = s.Cart().Add(line)
		return addErr
	})
	if err != nil {
		return cart.Line{}, err
	}

	return stored, nil
}
