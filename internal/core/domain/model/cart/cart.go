package cart

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Cart is the ordered list of lines a customer intends to buy.
// It is not safe for concurrent use; the owning session serialises access.
type Cart struct {
	lines []*Line
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make([]*Line, 0)}
}

// Add inserts line, or folds its quantity into an existing line for the same
// product and size. It returns the line as stored. A merge above MaxQuantity
// is rejected and leaves the existing line unchanged.
//
// Example:
//
//	line, _ := cart.NewLine(kernel.NewUUID(), hoodieID, "Oversized Hoodie", 180000, 1, "M", "hoodie.jpg")
//	stored, err := c.Add(line)
func (c *Cart) Add(line Line) (Line, error) {
	if err := line.Validate(); err != nil {
		return Line{}, err
	}

	if existing := c.findVariant(line.productID, line.size); existing != nil {
		if err := existing.setQuantity(existing.quantity + line.quantity); err != nil {
			return Line{}, err
		}
		return *existing, nil
	}

	stored := line
	c.lines = append(c.lines, &stored)
	return stored, nil
}

// Remove deletes the line with the given id.
func (c *Cart) Remove(lineID kernel.UUID) error {
	i := c.indexOf(lineID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", lineID.String())
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// UpdateQuantity sets the quantity of a line. Quantities below 1 are rejected.
func (c *Cart) UpdateQuantity(lineID kernel.UUID, quantity int) error {
	i := c.indexOf(lineID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", lineID.String())
	}

	return c.lines[i].setQuantity(quantity)
}

// UpdateSize moves a line to another size. When the product is already in
// the cart in that size, the two lines merge into the existing one. A merge
// above MaxQuantity leaves the cart unchanged.
func (c *Cart) UpdateSize(lineID kernel.UUID, size string) error {
	i := c.indexOf(lineID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", lineID.String())
	}

	moved := *c.lines[i]
	if err := moved.setSize(size); err != nil {
		return err
	}

	for j, other := range c.lines {
		if j != i && other.sameVariant(moved.productID, moved.size) {
			if err := other.setQuantity(other.quantity + moved.quantity); err != nil {
				return err
			}
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	*c.lines[i] = moved
	return nil
}

// Line returns a copy of the line with the given id.
func (c *Cart) Line(lineID kernel.UUID) (Line, error) {
	i := c.indexOf(lineID)
	if i < 0 {
		return Line{}, errs.NewObjectNotFoundError("cart line", lineID.String())
	}
	return *c.lines[i], nil
}

// Lines returns copies of all lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

// Subtotal is the sum of line totals, excluding shipping.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart after a successful order.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

func (c *Cart) indexOf(lineID kernel.UUID) int {
	for i, l := range c.lines {
		if l.id.IsEqual(lineID) {
			return i
		}
	}
	return -1
}

func (c *Cart) findVariant(productID kernel.UUID, size string) *Line {
	for _, l := range c.lines {
		if l.sameVariant(productID, size) {
			return l
		}
	}
	return nil
}
