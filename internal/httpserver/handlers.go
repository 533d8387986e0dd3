package httpserver

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopfront/internal/ui"
)

type handlers struct {
	sessions *sessionManager
}

func (h *handlers) home(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	c.HTML(http.StatusOK, "home", gin.H{
		"Title":     "Shop",
		"Products":  products,
		"CartCount": s.page.Text(ui.SlotCartCount),
		"Notices":   s.page.TakeNotices(),
	})
}

func (h *handlers) checkoutPage(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.OpenCheckout(c.Request.Context())

	fields := make(map[string]string)
	errors := make(map[string]string)
	for _, field := range ui.CheckoutFields {
		fields[field] = s.page.Field(field)
		errors[field] = s.page.Text(ui.ErrorSlot(field))
	}
	for _, field := range ui.BillingFields {
		fields[field] = s.page.Field(field)
	}
	for _, field := range ui.ShippingFields {
		fields[field] = s.page.Field(field)
	}

	c.HTML(http.StatusOK, "checkout", gin.H{
		"Title":             "Checkout",
		"BillingFieldNames": ui.BillingFields,
		"CartCount":         s.page.Text(ui.SlotCartCount),
		"Notices":           s.page.TakeNotices(),
		"Items":             template.HTML(s.page.Markup(ui.SlotCheckoutItems)),
		"Subtotal":          s.page.Text(ui.SlotSubtotal),
		"Tax":               s.page.Text(ui.SlotTax),
		"Total":             s.page.Text(ui.SlotTotal),
		"ProceedEnabled":    s.page.Enabled(ui.ControlProceed),
		"Fields":            fields,
		"Errors":            errors,
		"SameAsBilling":     s.page.Field(ui.ToggleSameAsBilling) == "on",
		"ShippingLocked":    !s.page.Enabled(ui.ShippingFields[0]),
		"ShowCheckout":      s.page.Visible(ui.ContainerCheckout),
		"ShowConfirmation":  s.page.Visible(ui.ContainerConfirm),
		"OrderDetails":      template.HTML(s.page.Markup(ui.SlotOrderDetails)),
	})
}

func (h *handlers) contactPage(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	c.HTML(http.StatusOK, "contact", gin.H{
		"Title":     "Contact",
		"CartCount": s.page.Text(ui.SlotCartCount),
		"Notices":   s.page.TakeNotices(),
	})
}

func (h *handlers) wishlistPage(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	c.HTML(http.StatusOK, "wishlist", gin.H{
		"Title":     "Wishlist",
		"CartCount": s.page.Text(ui.SlotCartCount),
		"Notices":   s.page.TakeNotices(),
	})
}

func (h *handlers) addToCart(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.AddToCart(c.Request.Context(), c.PostForm("name"), c.PostForm("price"), c.PostForm("id"))
	h.finish(c, s, "/")
}

func (h *handlers) buyNow(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.BuyNow(c.Request.Context(), c.PostForm("name"), c.PostForm("price"), c.PostForm("id"))
	h.finish(c, s, "/")
}

func (h *handlers) removeItem(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	// a garbage index is treated like a stale one: nothing to remove
	if index, err := strconv.Atoi(c.PostForm("index")); err == nil {
		s.ctrl.RemoveItem(c.Request.Context(), index)
	}
	h.finish(c, s, "/checkout")
}

func (h *handlers) submitCheckout(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range ui.CheckoutFields {
		h.setIfPresent(c, s, field)
	}
	for _, field := range ui.BillingFields {
		h.setIfPresent(c, s, field)
	}
	// locked shipping inputs do not submit; keep the mirrored values
	for _, field := range ui.ShippingFields {
		h.setIfPresent(c, s, field)
	}

	s.ctrl.SubmitCheckout(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/checkout")
}

func (h *handlers) billingToggle(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range ui.BillingFields {
		h.setIfPresent(c, s, field)
	}
	checked := c.PostForm(ui.ToggleSameAsBilling) == "on"
	if checked {
		s.page.SetField(ui.ToggleSameAsBilling, "on")
	} else {
		s.page.SetField(ui.ToggleSameAsBilling, "")
	}
	s.ctrl.ToggleSameAsBilling(checked)
	c.Redirect(http.StatusSeeOther, "/checkout")
}

func (h *handlers) newsletter(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page.SetField(ui.FieldNewsletterEmail, c.PostForm(ui.FieldNewsletterEmail))
	s.ctrl.SubmitNewsletter(c.Request.Context())
	h.finish(c, s, "/")
}

func (h *handlers) contact(c *gin.Context) {
	s := h.sessions.get(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page.SetField(ui.FieldContactName, c.PostForm(ui.FieldContactName))
	s.page.SetField(ui.FieldEmail, c.PostForm(ui.FieldEmail))
	s.page.SetField(ui.FieldContactMessage, c.PostForm(ui.FieldContactMessage))
	s.ctrl.SubmitContact(c.Request.Context())
	h.finish(c, s, "/contact")
}

func (h *handlers) setIfPresent(c *gin.Context, s *session, field string) {
	if v, ok := c.GetPostForm(field); ok {
		s.page.SetField(field, v)
	}
}

// finish ends an event request: a navigation raised by the controller wins,
// otherwise bounce back to the page the event came from.
func (h *handlers) finish(c *gin.Context, s *session, fallback string) {
	if url, ok := s.page.TakeRedirect(); ok {
		c.Redirect(http.StatusSeeOther, url)
		return
	}
	if ref := c.GetHeader("Referer"); ref != "" {
		fallback = ref
	}
	c.Redirect(http.StatusSeeOther, fallback)
}
