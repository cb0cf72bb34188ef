package services

import (
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ShippingToBeArranged is printed instead of a price when no zone matched.
const ShippingToBeArranged = "to be arranged"

// HandoffComposer renders a placed order as the plain-text message the
// customer sends to the store's chat. Amounts use the grouping rules of the
// configured locale.
type HandoffComposer struct {
	printer        *message.Printer
	currencySymbol string
}

// NewHandoffComposer builds a composer for a locale such as language.MustParse("es-CO").
func NewHandoffComposer(locale language.Tag, currencySymbol string) HandoffComposer {
	return HandoffComposer{
		printer:        message.NewPrinter(locale),
		currencySymbol: currencySymbol,
	}
}

// FormatAmount prints an amount in base currency units, e.g. "$250,000".
func (c HandoffComposer) FormatAmount(amount int64) string {
	return c.currencySymbol + c.printer.Sprintf("%d", amount)
}

// Compose renders the order summary: itemised lines, subtotal, shipping (or
// ShippingToBeArranged), total and a map link when a location was captured.
func (c HandoffComposer) Compose(o *order.Order) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("Hello! I'd like to place an order.\n")
	fmt.Fprintf(&b, "Order #%s\n", o.Code())
	fmt.Fprintf(&b, "Customer: %s\n", o.Customer().FullName())

	b.WriteString("\nItems:\n")
	for _, l := range o.Lines() {
		fmt.Fprintf(&b, "- %s (%s) x%d: %s\n", l.Name(), l.Size(), l.Quantity(), c.FormatAmount(l.Total()))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", c.FormatAmount(o.Subtotal()))

	shipping := o.Shipping()
	switch {
	case shipping.ToBeArranged():
		fmt.Fprintf(&b, "Shipping: %s\n", ShippingToBeArranged)
	case shipping.ZoneName != "":
		fmt.Fprintf(&b, "Shipping (%s): %s\n", shipping.ZoneName, c.FormatAmount(shipping.Cost))
	default:
		fmt.Fprintf(&b, "Shipping: %s\n", c.FormatAmount(shipping.Cost))
	}

	fmt.Fprintf(&b, "Total: %s\n", c.FormatAmount(o.Total()))

	if loc := o.Location(); loc != nil {
		fmt.Fprintf(&b, "\nLocation: %s\n", MapsLink(*loc))
	}

	return b.String(), nil
}

// MapsLink returns a Google Maps URL centred on point.
func MapsLink(point kernel.Coordinate) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%.6f,%.6f", point.Lat(), point.Lng())
}
