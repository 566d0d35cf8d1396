package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/walterflo/pizzeria-service/internal/catalog"
	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

var (
	// ErrEmptyCart is returned when an order message is requested for a cart
	// with no lines. Sending an empty order is a validation failure, not a
	// formatting of nothing.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingPickupTime is returned when the pickup time is blank. The
	// business schedules around it, so a message without one is never emitted.
	ErrMissingPickupTime = errors.New("pickup time is required")
)

const (
	greeting     = "Bonjour! Je souhaite passer une commande:"
	closing      = "Merci!"
	choiceNote   = " (À préciser: qual?)"
	bundleNote   = " (Précisez la pizza/boisson/dessert)"
	choiceMarker = " ou "
)

// OrderFormatter turns a cart snapshot plus a pickup time into the single
// outbound message body shared by every delivery channel. The channel
// adapters differ only in how they wrap and encode this string.
type OrderFormatter struct {
	bundleID string
}

// FormatterOption configures an OrderFormatter.
type FormatterOption func(*OrderFormatter)

// WithBundleID overrides the catalog ID treated as the choice-requiring
// bundle.
func WithBundleID(id string) FormatterOption {
	return func(f *OrderFormatter) {
		f.bundleID = id
	}
}

// NewOrderFormatter creates an OrderFormatter. By default the student menu
// is the bundle that triggers a clarification note.
func NewOrderFormatter(opts ...FormatterOption) *OrderFormatter {
	f := &OrderFormatter{bundleID: catalog.StudentMenuID}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NeedsClarification reports whether the line's item requires the customer
// to specify a choice at pickup, and returns the note to append.
//
// The rule matches " ou " in the lowercased display name, falling back to
// the bundle ID. Matching on the name is a known data/logic coupling kept
// for compatibility with the live menu; it is isolated here so a structured
// catalog flag can replace it without touching the message assembly.
func (f *OrderFormatter) NeedsClarification(line model.Line) (string, bool) {
	if strings.Contains(strings.ToLower(line.Name), choiceMarker) {
		return choiceNote, true
	}
	if line.Key.ItemID == f.bundleID {
		return bundleNote, true
	}
	return "", false
}

// FormatOrderMessage composes the order message for the given cart and
// pickup time.
//
// The output is deterministic: the same cart and pickup time always produce
// byte-identical text. Lines appear in cart order, each with quantity, name,
// size label and subtotal, followed by the total, the pickup time and a
// courtesy close. Transport-specific escaping is the caller's concern.
func (f *OrderFormatter) FormatOrderMessage(cart model.Cart, pickupTime string) (string, error) {
	if cart.Empty() {
		return "", ErrEmptyCart
	}
	if pickupTime == "" {
		return "", ErrMissingPickupTime
	}

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")

	for _, line := range cart.Lines {
		note, _ := f.NeedsClarification(line)
		label := line.Key.Size.Label()
		if label != "" {
			label = "(" + label + ")"
		}
		fmt.Fprintf(&b, "• %dx %s %s - %s%s\n",
			line.Quantity, line.Name, label, line.Subtotal().Format(), note)
	}

	fmt.Fprintf(&b, "\n*TOTAL: %s*\n", cart.Total().Format())
	fmt.Fprintf(&b, "\n🕒 *Heure de retrait: %s*", pickupTime)
	b.WriteString("\n\n")
	b.WriteString(closing)

	return b.String(), nil
}

// FormatPickupOrder is a convenience wrapper over FormatOrderMessage for an
// already composed PickupOrder value.
func (f *OrderFormatter) FormatPickupOrder(order model.PickupOrder) (string, error) {
	return f.FormatOrderMessage(order.Cart, order.PickupTime)
}
