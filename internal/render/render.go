// Package render projects cart state onto the page's output slots. It is a
// pure projection: given the same items and totals it performs the same slot
// writes, and it never mutates the cart.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"shopfront/internal/domain"
	"shopfront/internal/ui"
)

// currencyPrefix is the storefront's single display currency.
const currencyPrefix = "P "

// Renderer writes cart projections into a Page.
type Renderer struct {
	page ui.Page
}

func New(page ui.Page) *Renderer {
	return &Renderer{page: page}
}

// Cart writes the item list, the money slots, the nav badge and the proceed
// control state. An empty cart shows the placeholder and disables proceed.
func (r *Renderer) Cart(items []domain.LineItem, totals domain.Totals) {
	if len(items) == 0 {
		r.page.SetHTML(ui.SlotCheckoutItems, `<p class="placeholder-message">Your cart is empty.</p>`)
		r.page.SetEnabled(ui.ControlProceed, false)
	} else {
		var b strings.Builder
		for i, item := range items {
			b.WriteString(`<div class="cart-item">`)
			fmt.Fprintf(&b, `<img src="images/product%s.jpg" alt="%s">`, imageRef(item, i), Escape(item.Name))
			b.WriteString(`<div class="cart-item-details">`)
			fmt.Fprintf(&b, `<p>%s (x%d)</p>`, Escape(item.Name), item.Quantity)
			fmt.Fprintf(&b, `<p>%s%s</p>`, currencyPrefix, Money(item.LineTotal()))
			b.WriteString(`</div>`)
			fmt.Fprintf(&b, `<button class="remove-item" data-index="%d">Remove</button>`, i)
			b.WriteString(`</div>`)
		}
		r.page.SetHTML(ui.SlotCheckoutItems, b.String())
		r.page.SetEnabled(ui.ControlProceed, true)
	}

	r.page.SetText(ui.SlotSubtotal, Money(totals.Subtotal))
	r.page.SetText(ui.SlotTax, Money(totals.Tax))
	r.page.SetText(ui.SlotTotal, Money(totals.Total))

	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	r.Count(count)
}

// Count refreshes the nav badge with the total item quantity.
func (r *Renderer) Count(n int) {
	r.page.SetText(ui.SlotCartCount, strconv.Itoa(n))
}

// OrderSummary writes the confirmation view's order details. Every
// user-supplied value is escaped on the way in.
func (r *Renderer) OrderSummary(fullName, email, orderRef string, items []domain.LineItem, totals domain.Totals) {
	var b strings.Builder
	fmt.Fprintf(&b, `<p><strong>Order:</strong> %s</p>`, Escape(orderRef))
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, Escape(fullName))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, Escape(email))
	b.WriteString(`<p><strong>Items:</strong></p><ul>`)
	for _, item := range items {
		fmt.Fprintf(&b, `<li>%s (x%d) - %s%s</li>`, Escape(item.Name), item.Quantity, currencyPrefix, Money(item.LineTotal()))
	}
	b.WriteString(`</ul>`)
	fmt.Fprintf(&b, `<p><strong>Subtotal:</strong> %s%s</p>`, currencyPrefix, Money(totals.Subtotal))
	fmt.Fprintf(&b, `<p><strong>Tax (15%%):</strong> %s%s</p>`, currencyPrefix, Money(totals.Tax))
	fmt.Fprintf(&b, `<p><strong>Total:</strong> %s%s</p>`, currencyPrefix, Money(totals.Total))
	r.page.SetHTML(ui.SlotOrderDetails, b.String())
}

// Money formats a value for display, always two decimal places.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Escape neutralizes markup-significant characters in user-supplied text.
// Every free-text value must pass through here before it reaches a slot.
func Escape(s string) string {
	return html.EscapeString(s)
}

// imageRef mirrors the product image naming on the storefront pages: the
// item's id when it has one, else its 1-based position.
func imageRef(item domain.LineItem, index int) string {
	if item.ID != "" {
		return item.ID
	}
	return strconv.Itoa(index + 1)
}
