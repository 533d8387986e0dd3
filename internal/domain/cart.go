package domain

// LineItem is one product entry in the cart. Cart identity is by Name:
// adding a product whose name matches an existing line bumps that line's
// quantity instead of appending a second one.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ID       string  `json:"id"`
}

// LineTotal is the display total for the line, price times quantity.
func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Totals holds the derived money values for a cart. Computed on demand,
// never persisted.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}
