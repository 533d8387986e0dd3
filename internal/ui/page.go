// Package ui abstracts the storefront page: named output slots the renderer
// writes into and form controls the controller reads. The core never touches
// a concrete page tree; adapters decide what a slot actually is.
package ui

// Page is the controller's view of the storefront page. Ids follow the
// storefront markup ("checkout-items", "cart-count", ...).
type Page interface {
	// Has reports whether the page exposes the slot, control or container.
	Has(id string) bool

	// SetText replaces the slot's text content. Values are written as-is;
	// callers escape user-supplied input first.
	SetText(id, text string)
	// SetHTML replaces the slot's rendered markup.
	SetHTML(id, markup string)
	// SetVisible shows or hides a container.
	SetVisible(id string, visible bool)
	// SetEnabled toggles a control or input field, including any disabled
	// styling the adapter applies.
	SetEnabled(id string, enabled bool)

	// Field returns the current value of a form input.
	Field(id string) string
	// SetField overwrites the value of a form input.
	SetField(id, value string)
	// ResetForm clears every input of the named form.
	ResetForm(id string)

	// Notify raises a blocking notice to the user.
	Notify(message string)
	// Redirect navigates away from the page. Fire and forget.
	Redirect(url string)
}
