package product

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrProductIsInactive       = errors.New("product is not available")
)

// Product is a catalog entry. Price is in base currency units. A product
// with no sizes is sold as cart.SingleSize.
type Product struct {
	id     kernel.UUID
	name   string
	price  int64
	sizes  []string
	image  string
	active bool

	guard guard.ConstructorGuard
}

func NewProduct(id kernel.UUID, name string, price int64, sizes []string, image string, active bool) (*Product, error) {
	p := &Product{
		image:  strings.TrimSpace(image),
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setSizes(sizes),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() int64 {
	return p.price
}

func (p *Product) Sizes() []string {
	return slices.Clone(p.sizes)
}

func (p *Product) Image() string {
	return p.image
}

func (p *Product) IsActive() bool {
	return p.active
}

// ResolveSize maps a requested size to the one stored on the cart line.
// One-size products accept an empty request or cart.SingleSize.
func (p *Product) ResolveSize(requested string) (string, error) {
	requested = strings.TrimSpace(requested)

	if len(p.sizes) == 0 {
		if requested == "" || requested == cart.SingleSize {
			return cart.SingleSize, nil
		}
		return "", errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%s is sold in one size only", p.name))
	}

	if !slices.Contains(p.sizes, requested) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"size",
			fmt.Errorf("%q is not offered for %s (offered: %s)", requested, p.name, strings.Join(p.sizes, ", ")),
		)
	}
	return requested, nil
}

// NewCartLine prices a line for this product. Inactive products are refused.
func (p *Product) NewCartLine(lineID kernel.UUID, quantity int, size string) (cart.Line, error) {
	if !p.active {
		return cart.Line{}, ErrProductIsInactive
	}

	resolved, err := p.ResolveSize(size)
	if err != nil {
		return cart.Line{}, err
	}

	return cart.NewLine(lineID, p.id, p.name, p.price, quantity, resolved, p.image)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setSizes(sizes []string) error {
	cleaned := make([]string, 0, len(sizes))
	for _, s := range sizes {
		s = strings.TrimSpace(s)
		if s == "" || s == cart.SingleSize || slices.Contains(cleaned, s) {
			continue
		}
		cleaned = append(cleaned, s)
	}
	p.sizes = cleaned
	return nil
}
