package ui

// Slot, control and field ids shared by the renderer, the checkout flow and
// the page adapters. They mirror the storefront markup.
const (
	SlotCheckoutItems = "checkout-items"
	SlotSubtotal      = "checkout-subtotal"
	SlotTax           = "checkout-tax"
	SlotTotal         = "checkout-total"
	SlotCartCount     = "cart-count"
	SlotOrderDetails  = "order-details"

	ControlProceed = "proceed-to-checkout"

	ContainerCheckout = "checkout-container"
	ContainerConfirm  = "confirmation-step"

	FormCheckout   = "checkout-form"
	FormNewsletter = "newsletter-form"
	FormContact    = "contact-form"

	FieldFullName   = "full-name"
	FieldEmail      = "email"
	FieldCardNumber = "card-number"
	FieldCardExpiry = "card-expiry"
	FieldCardCVC    = "card-cvc"

	FieldNewsletterEmail = "newsletter-email"
	FieldContactName     = "name"
	FieldContactMessage  = "message"

	ToggleSameAsBilling = "same-as-billing"
)

// CheckoutFields lists the validated checkout fields in display order.
var CheckoutFields = []string{
	FieldFullName,
	FieldEmail,
	FieldCardNumber,
	FieldCardExpiry,
	FieldCardCVC,
}

// BillingFields and ShippingFields are index-aligned: the "same as billing"
// toggle mirrors billing values into the matching shipping input.
var (
	BillingFields  = []string{"billing-street", "billing-city", "billing-postal", "billing-country"}
	ShippingFields = []string{"shipping-street", "shipping-city", "shipping-postal", "shipping-country"}
)

// ErrorSlot returns the id of the error slot paired with a form field.
func ErrorSlot(fieldID string) string {
	return "error-" + fieldID
}
