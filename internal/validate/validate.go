// Package validate checks the storefront's form input. It never mutates
// state: callers get the complete error set back and decide how to show it.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"shopfront/internal/ui"
)

// Structural checks only. The email rule is the storefront's "looks like an
// address" test, not RFC validation, and the expiry rule checks shape, not
// calendar validity.
var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardRe   = regexp.MustCompile(`^\d{16}$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvcRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// CheckoutForm is the transient snapshot of the checkout fields, captured at
// the moment checkout is attempted. Values are expected trimmed, the card
// number with whitespace stripped; Checkout re-normalizes defensively.
type CheckoutForm struct {
	FullName   string
	Email      string
	CardNumber string
	CardExpiry string
	CardCVC    string
}

// Errors maps a field id to its message. Empty means the form passed.
type Errors map[string]string

// OK reports whether no field failed.
func (e Errors) OK() bool { return len(e) == 0 }

// Checkout checks every field and reports all violations at once so the
// page can show them together.
func Checkout(f CheckoutForm) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.FullName) == "" {
		errs[ui.FieldFullName] = "Full name is required."
	}
	if email := strings.TrimSpace(f.Email); email == "" || !emailRe.MatchString(email) {
		errs[ui.FieldEmail] = "Invalid email format."
	}
	if !cardRe.MatchString(StripSpace(f.CardNumber)) {
		errs[ui.FieldCardNumber] = "Card number must be 16 digits."
	}
	if !expiryRe.MatchString(strings.TrimSpace(f.CardExpiry)) {
		errs[ui.FieldCardExpiry] = "Expiry must be MM/YY."
	}
	if !cvcRe.MatchString(strings.TrimSpace(f.CardCVC)) {
		errs[ui.FieldCardCVC] = "CVC must be 3 or 4 digits."
	}
	return errs
}

// EmailOK reports whether s passes the structural email check. The
// newsletter form's single rule.
func EmailOK(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// Contact reports whether the contact form carries a name, a message and a
// plausible email.
func Contact(name, email, message string) bool {
	return strings.TrimSpace(name) != "" &&
		strings.TrimSpace(message) != "" &&
		EmailOK(email)
}

// StripSpace removes all whitespace, the normalization applied to card
// numbers before the digit check.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
