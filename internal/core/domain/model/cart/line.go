package cart

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// SingleSize is the size recorded for products sold in one size only.
const SingleSize = "One Size"

const (
	// MaxQuantity bounds the units of one line, merges included.
	MaxQuantity = 999
	// MaxUnitPrice bounds a unit price so line totals and subtotals stay
	// far below the int64 range.
	MaxUnitPrice int64 = 1_000_000_000_000
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a cart entry. Lines are owned by a Cart; outside the package they
// are handled as value copies.
type Line struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	productID kernel.UUID
	name      string
	unitPrice int64
	quantity  int
	size      string
	image     string

	guard guard.ConstructorGuard
}

// NewLine builds a validated line. An empty size is stored as SingleSize.
func NewLine(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	unitPrice int64,
	quantity int,
	size string,
	image string,
) (Line, error) {
	l := Line{
		image: strings.TrimSpace(image),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setProductID(productID),
		l.setName(name),
		l.setUnitPrice(unitPrice),
		l.setQuantity(quantity),
		l.setSize(size),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ID() kernel.UUID {
	return l.id
}

func (l Line) ProductID() kernel.UUID {
	return l.productID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) UnitPrice() int64 {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) Size() string {
	return l.size
}

func (l Line) Image() string {
	return l.image
}

// Total is unit price × quantity.
func (l Line) Total() int64 {
	return l.unitPrice * int64(l.quantity)
}

// IsSingleSize reports whether the line carries the SingleSize sentinel.
func (l Line) IsSingleSize() bool {
	return l.size == SingleSize
}

func (l Line) sameVariant(productID kernel.UUID, size string) bool {
	return l.productID.IsEqual(productID) && l.size == size
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	l.productID = productID
	return nil
}

func (l *Line) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", price))
	}
	if price > MaxUnitPrice {
		return errs.NewValueIsOutOfRangeError("unitPrice", price, int64(0), MaxUnitPrice)
	}
	l.unitPrice = price
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setSize(size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		size = SingleSize
	}
	l.size = size
	return nil
}
