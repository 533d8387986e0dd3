package controller

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"shopfront/internal/cart"
	"shopfront/internal/domain"
	"shopfront/internal/render"
	"shopfront/internal/ui"
	"shopfront/internal/validate"
)

// State tracks where the shopper is in the checkout journey.
type State int

const (
	StateShopping State = iota
	StateReviewing
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateShopping:
		return "shopping"
	case StateReviewing:
		return "reviewing"
	case StateConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Flow drives the transition from shopping to a confirmed order. There is no
// failed state: a rejected confirmation leaves the flow where it was and the
// shopper retries.
type Flow struct {
	cart     *cart.Store
	page     ui.Page
	renderer *render.Renderer
	logger   *log.Logger
	state    State
}

func NewFlow(cartStore *cart.Store, page ui.Page, renderer *render.Renderer, logger *log.Logger) *Flow {
	return &Flow{cart: cartStore, page: page, renderer: renderer, logger: logger}
}

// State returns the current flow state.
func (f *Flow) State() State { return f.state }

// EnterReview records that the checkout view was opened. The cart is
// untouched and the transition is one-way until confirmation.
func (f *Flow) EnterReview() {
	if f.state == StateShopping {
		f.state = StateReviewing
	}
}

// Confirm attempts the transition to StateConfirmed. The collaborator check
// runs first and aborts the whole flow before any validation; a validation
// failure writes the failing fields' error slots and raises the aggregate
// notice, leaving state and cart alone.
func (f *Flow) Confirm(ctx context.Context) {
	if f.state == StateConfirmed {
		return
	}

	if err := f.checkCollaborators(); err != nil {
		f.logger.Printf("checkout aborted: %v", err)
		f.page.Notify("Unable to proceed to checkout. Please try again.")
		return
	}

	form := f.snapshot()
	errs := validate.Checkout(form)
	if !errs.OK() {
		for field, message := range errs {
			f.page.SetText(ui.ErrorSlot(field), message)
		}
		f.page.Notify("Please fill in all required fields correctly.")
		return
	}

	f.clearErrors()
	f.page.SetVisible(ui.ContainerCheckout, false)
	f.page.SetVisible(ui.ContainerConfirm, true)
	f.renderer.OrderSummary(form.FullName, form.Email, uuid.NewString(), f.cart.Items(), f.cart.Totals())
	f.cart.Clear(ctx)
	f.renderer.Count(0)
	f.state = StateConfirmed
}

// checkCollaborators verifies the containers the transition writes to are
// actually on the page. Checked before validation so a broken page never
// reads as a form mistake.
func (f *Flow) checkCollaborators() error {
	for _, id := range []string{ui.FormCheckout, ui.ContainerConfirm, ui.ContainerCheckout} {
		if !f.page.Has(id) {
			return fmt.Errorf("%w: %s", domain.ErrMissingSlot, id)
		}
	}
	return nil
}

func (f *Flow) snapshot() validate.CheckoutForm {
	return validate.CheckoutForm{
		FullName:   strings.TrimSpace(f.page.Field(ui.FieldFullName)),
		Email:      strings.TrimSpace(f.page.Field(ui.FieldEmail)),
		CardNumber: validate.StripSpace(f.page.Field(ui.FieldCardNumber)),
		CardExpiry: strings.TrimSpace(f.page.Field(ui.FieldCardExpiry)),
		CardCVC:    strings.TrimSpace(f.page.Field(ui.FieldCardCVC)),
	}
}

func (f *Flow) clearErrors() {
	for _, field := range ui.CheckoutFields {
		f.page.SetText(ui.ErrorSlot(field), "")
	}
}
