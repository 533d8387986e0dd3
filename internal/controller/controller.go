// Package controller reacts to page events: it mutates the cart through its
// store, re-projects state through the renderer, and runs the checkout flow.
// Every handler is an isolation boundary — failures become notices or field
// errors and never propagate past the event.
package controller

import (
	"context"
	"log"
	"strings"

	"shopfront/internal/cart"
	"shopfront/internal/render"
	"shopfront/internal/ui"
	"shopfront/internal/validate"
)

// wishlistURL is the fixed destination the buy-now control navigates to.
const wishlistURL = "/wishlist"

// Controller wires the cart store, the page and the checkout flow together.
type Controller struct {
	cart     *cart.Store
	page     ui.Page
	renderer *render.Renderer
	flow     *Flow
	logger   *log.Logger
}

func New(cartStore *cart.Store, page ui.Page, logger *log.Logger) *Controller {
	renderer := render.New(page)
	return &Controller{
		cart:     cartStore,
		page:     page,
		renderer: renderer,
		flow:     NewFlow(cartStore, page, renderer, logger),
		logger:   logger,
	}
}

// Flow exposes the checkout state machine.
func (c *Controller) Flow() *Flow { return c.flow }

// Init loads the persisted cart and projects it. The page-ready hook.
func (c *Controller) Init(ctx context.Context) {
	c.cart.Load(ctx)
	c.renderCart()
}

// AddToCart merges the product into the cart and confirms with a notice.
// Invalid product data aborts with a blocking notice and no state change.
func (c *Controller) AddToCart(ctx context.Context, name, price, id string) {
	c.addItem(ctx, name, price, id)
}

// BuyNow adds the product like AddToCart and then navigates to the wishlist
// page. A rejected add aborts before the navigation.
func (c *Controller) BuyNow(ctx context.Context, name, price, id string) {
	if c.addItem(ctx, name, price, id) {
		c.page.Redirect(wishlistURL)
	}
}

func (c *Controller) addItem(ctx context.Context, name, price, id string) bool {
	item, err := c.cart.Add(ctx, name, price, id)
	if err != nil {
		c.logger.Printf("invalid product data: name=%q price=%q id=%q", name, price, id)
		c.page.Notify("Unable to add item to cart. Please try again.")
		return false
	}
	c.renderCart()
	c.page.Notify(render.Escape(item.Name) + " added to cart!")
	return true
}

// RemoveItem drops the line at the rendered position. Stale indexes are
// ignored by the store.
func (c *Controller) RemoveItem(ctx context.Context, index int) {
	c.cart.Remove(ctx, index)
	c.renderCart()
}

// OpenCheckout marks the checkout view as entered and re-projects the cart.
func (c *Controller) OpenCheckout(ctx context.Context) {
	c.flow.EnterReview()
	c.renderCart()
}

// SubmitCheckout runs the confirmation flow. Shared by the proceed control
// and the checkout form's submit event.
func (c *Controller) SubmitCheckout(ctx context.Context) {
	c.flow.Confirm(ctx)
}

// SubmitNewsletter validates the single email field, confirms or complains
// with a notice, and resets the form on success. Nothing is persisted.
func (c *Controller) SubmitNewsletter(ctx context.Context) {
	email := c.page.Field(ui.FieldNewsletterEmail)
	if !validate.EmailOK(email) {
		c.page.Notify("Please enter a valid email.")
		return
	}
	c.page.Notify("Subscribed with " + render.Escape(strings.TrimSpace(email)) + "!")
	c.page.ResetForm(ui.FormNewsletter)
}

// SubmitContact checks name, email and message presence, notifies either
// way, and resets the form on success.
func (c *Controller) SubmitContact(ctx context.Context) {
	name := c.page.Field(ui.FieldContactName)
	email := c.page.Field(ui.FieldEmail)
	message := c.page.Field(ui.FieldContactMessage)
	if !validate.Contact(name, email, message) {
		c.page.Notify("Please fill in all fields with valid data.")
		return
	}
	c.page.Notify("Message sent! We will get back to you soon.")
	c.page.ResetForm(ui.FormContact)
}

// ToggleSameAsBilling mirrors the billing fields into the shipping fields
// and locks them while checked; unchecking clears and re-enables them.
func (c *Controller) ToggleSameAsBilling(checked bool) {
	for i, shipping := range ui.ShippingFields {
		if checked {
			c.page.SetField(shipping, c.page.Field(ui.BillingFields[i]))
		} else {
			c.page.SetField(shipping, "")
		}
		c.page.SetEnabled(shipping, !checked)
	}
}

func (c *Controller) renderCart() {
	c.renderer.Cart(c.cart.Items(), c.cart.Totals())
}
