// Package whatsapp builds click-to-chat links addressed to the store's number.
package whatsapp

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"unicode"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const baseURL = "https://wa.me/"

var (
	_ ports.Messenger = (*Messenger)(nil)

	ErrMessageIsEmpty = errs.NewValueIsRequiredError("message")
)

// Messenger turns a message into a wa.me deep link. It does not contact
// WhatsApp; the customer's device opens the link.
type Messenger struct {
	number string
}

// NewMessenger accepts the store number in any human format
// ("+57 300 123-4567") and keeps the digits only.
func NewMessenger(number string) (*Messenger, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return nil, errs.NewValueIsRequiredErrorWithCause("whatsapp number", errors.New("no digits in number"))
	}
	return &Messenger{number: digits}, nil
}

func (m *Messenger) Number() string {
	return m.number
}

func (m *Messenger) Handoff(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrMessageIsEmpty
	}

	// wa.me renders "+" literally, so spaces are sent as %20.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return baseURL + m.number + "?text=" + text, nil
}
