package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/cart"
	"shopfront/internal/domain"
	"shopfront/internal/kvstore"
	"shopfront/internal/ui"
)

func fillValidCheckoutForm(page *ui.State) {
	page.SetField(ui.FieldFullName, "Ada Lovelace")
	page.SetField(ui.FieldEmail, "ada@example.com")
	page.SetField(ui.FieldCardNumber, "1234 5678 9012 3456")
	page.SetField(ui.FieldCardExpiry, "09/27")
	page.SetField(ui.FieldCardCVC, "123")
}

func TestFlow_EnterReview(t *testing.T) {
	ctrl, _ := newTestController(kvstore.NewMemory())
	flow := ctrl.Flow()

	assert.Equal(t, StateShopping, flow.State())
	flow.EnterReview()
	assert.Equal(t, StateReviewing, flow.State())
	flow.EnterReview()
	assert.Equal(t, StateReviewing, flow.State())
}

func TestConfirm_MissingCollaboratorAbortsBeforeValidation(t *testing.T) {
	ctx := context.Background()
	ctrl, page := newTestController(kvstore.NewMemory())
	ctrl.Init(ctx)
	ctrl.AddToCart(ctx, "Mug", "9.99", "1")
	page.TakeNotices()

	// form left completely empty; the missing container must win anyway
	page.MarkAbsent(ui.ContainerConfirm)
	ctrl.SubmitCheckout(ctx)

	assert.Equal(t, []string{"Unable to proceed to checkout. Please try again."}, page.TakeNotices())
	assert.Equal(t, StateShopping, ctrl.Flow().State())
	for _, field := range ui.CheckoutFields {
		assert.Empty(t, page.Text(ui.ErrorSlot(field)), "no validation should have run")
	}
	assert.Equal(t, "1", page.Text(ui.SlotCartCount), "cart untouched")
}

func TestConfirm_InvalidEmailKeepsShopping(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	ctrl, page := newTestController(kv)
	ctrl.Init(ctx)
	ctrl.AddToCart(ctx, "Mug", "9.99", "1")
	page.TakeNotices()

	fillValidCheckoutForm(page)
	page.SetField(ui.FieldEmail, "a@b")
	ctrl.SubmitCheckout(ctx)

	assert.Equal(t, []string{"Please fill in all required fields correctly."}, page.TakeNotices())
	assert.Equal(t, StateShopping, ctrl.Flow().State())
	assert.Equal(t, "Invalid email format.", page.Text(ui.ErrorSlot(ui.FieldEmail)))
	for _, field := range ui.CheckoutFields {
		if field == ui.FieldEmail {
			continue
		}
		assert.Empty(t, page.Text(ui.ErrorSlot(field)), "only the email error slot should be set")
	}

	// cart unchanged, in memory and in storage
	assert.Equal(t, "1", page.Text(ui.SlotCartCount))
	raw, err := kv.Get(ctx, cart.StorageKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "Mug")
	assert.True(t, page.Visible(ui.ContainerCheckout))
}

func TestConfirm_Success(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	ctrl, page := newTestController(kv)
	ctrl.Init(ctx)
	ctrl.AddToCart(ctx, "Mug", "9.99", "1")
	ctrl.AddToCart(ctx, "Mug", "9.99", "1")
	ctrl.AddToCart(ctx, "Pen", "1.50", "2")
	page.TakeNotices()

	ctrl.OpenCheckout(ctx)
	require.Equal(t, StateReviewing, ctrl.Flow().State())

	fillValidCheckoutForm(page)
	ctrl.SubmitCheckout(ctx)

	assert.Equal(t, StateConfirmed, ctrl.Flow().State())
	assert.False(t, page.Visible(ui.ContainerCheckout))
	assert.True(t, page.Visible(ui.ContainerConfirm))

	summary := page.Markup(ui.SlotOrderDetails)
	assert.Contains(t, summary, "Ada Lovelace")
	assert.Contains(t, summary, "ada@example.com")
	assert.Contains(t, summary, "Mug (x2) - P 19.98")
	assert.Contains(t, summary, "Pen (x1) - P 1.50")
	assert.Contains(t, summary, "<strong>Subtotal:</strong> P 21.48")
	assert.Contains(t, summary, "<strong>Tax (15%):</strong> P 3.22")
	assert.Contains(t, summary, "<strong>Total:</strong> P 24.70")

	// cart cleared everywhere
	assert.Equal(t, "0", page.Text(ui.SlotCartCount))
	raw, err := kv.Get(ctx, cart.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	for _, field := range ui.CheckoutFields {
		assert.Empty(t, page.Text(ui.ErrorSlot(field)))
	}
}

func TestConfirm_RetryAfterFixingField(t *testing.T) {
	ctx := context.Background()
	ctrl, page := newTestController(kvstore.NewMemory())
	ctrl.Init(ctx)
	ctrl.AddToCart(ctx, "Mug", "9.99", "1")
	page.TakeNotices()

	fillValidCheckoutForm(page)
	page.SetField(ui.FieldCardCVC, "12")
	ctrl.SubmitCheckout(ctx)
	assert.Equal(t, "CVC must be 3 or 4 digits.", page.Text(ui.ErrorSlot(ui.FieldCardCVC)))
	assert.NotEqual(t, StateConfirmed, ctrl.Flow().State())

	page.SetField(ui.FieldCardCVC, "1234")
	ctrl.SubmitCheckout(ctx)
	assert.Equal(t, StateConfirmed, ctrl.Flow().State())
	assert.Empty(t, page.Text(ui.ErrorSlot(ui.FieldCardCVC)))
}

func TestConfirm_TerminalState(t *testing.T) {
	ctx := context.Background()
	ctrl, page := newTestController(kvstore.NewMemory())
	ctrl.Init(ctx)
	ctrl.AddToCart(ctx, "Mug", "9.99", "1")
	fillValidCheckoutForm(page)
	ctrl.SubmitCheckout(ctx)
	require.Equal(t, StateConfirmed, ctrl.Flow().State())
	page.TakeNotices()

	summary := page.Markup(ui.SlotOrderDetails)
	ctrl.SubmitCheckout(ctx)

	assert.Equal(t, StateConfirmed, ctrl.Flow().State())
	assert.Empty(t, page.TakeNotices())
	assert.Equal(t, summary, page.Markup(ui.SlotOrderDetails))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "shopping", StateShopping.String())
	assert.Equal(t, "reviewing", StateReviewing.String())
	assert.Equal(t, "confirmed", StateConfirmed.String())
}

func TestMissingSlotErrorIsDistinct(t *testing.T) {
	ctrl, page := newTestController(kvstore.NewMemory())
	page.MarkAbsent(ui.FormCheckout)
	err := ctrl.Flow().checkCollaborators()
	assert.True(t, errors.Is(err, domain.ErrMissingSlot))
}
