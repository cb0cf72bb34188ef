package commands

import (
	"context"

	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// ChangeCartLineCommandHandler applies quantity and size edits. A new size is
// checked against the product's offered sizes before the cart is touched.
type ChangeCartLineCommandHandler struct {
	products ports.ProductRepository
	sessions ports.SessionStore
}

func NewChangeCartLineCommandHandler(products ports.ProductRepository, sessions ports.SessionStore) ChangeCartLineCommandHandler {
	return ChangeCartLineCommandHandler{
		products: products,
		sessions: sessions,
	}
}

func (h ChangeCartLineCommandHandler) Handle(ctx context.Context, cmd ChangeCartLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	size, sizeRequested := cmd.Size()
	if sizeRequested {
		resolved, err := h.resolveSize(ctx, cmd.SessionID(), cmd.LineID(), size)
		if err != nil {
			return err
		}
		size = resolved
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(s *checkout.Session) error {
		if quantity, ok := cmd.Quantity(); ok {
			if err := s.Cart().UpdateQuantity(cmd.LineID(), quantity); err != nil {
				return err
			}
		}
		if sizeRequested {
			return s.Cart().UpdateSize(cmd.LineID(), size)
		}
		return nil
	})
}

func (h ChangeCartLineCommandHandler) resolveSize(ctx context.Context, sessionID, lineID kernel.UUID, size string) (string, error) {
	var productID kernel.UUID
	err := h.sessions.View(ctx, sessionID, func(s *checkout.Session) error {
		line, err := s.Cart().Line(lineID)
		if err != nil {
			return err
		}
		productID = line.ProductID()
		return nil
	})
	if err != nil {
		return "", err
	}

	p, err := h.products.Get(ctx, productID)
	if err != nil {
		return "", err
	}
	return p.ResolveSize(size)
}
