package ui

// State is an in-memory Page implementation. The web adapter keeps one per
// session and projects it into HTML; tests inspect it directly. Zero values
// lean permissive: unknown ids exist, containers are visible, controls are
// enabled, fields are empty.
type State struct {
	absent   map[string]bool
	texts    map[string]string
	markup   map[string]string
	hidden   map[string]bool
	disabled map[string]bool
	fields   map[string]string
	notices  []string
	redirect string
}

// NewState returns an empty page state.
func NewState() *State {
	return &State{
		absent:   make(map[string]bool),
		texts:    make(map[string]string),
		markup:   make(map[string]string),
		hidden:   make(map[string]bool),
		disabled: make(map[string]bool),
		fields:   make(map[string]string),
	}
}

// formFields maps each form to the inputs ResetForm clears.
var formFields = map[string][]string{
	FormCheckout: {
		FieldFullName, FieldEmail, FieldCardNumber, FieldCardExpiry, FieldCardCVC,
		"billing-street", "billing-city", "billing-postal", "billing-country",
		"shipping-street", "shipping-city", "shipping-postal", "shipping-country",
	},
	FormNewsletter: {FieldNewsletterEmail},
	FormContact:    {FieldContactName, FieldEmail, FieldContactMessage},
}

func (s *State) Has(id string) bool { return !s.absent[id] }

// MarkAbsent makes Has report the given ids as missing from the page.
func (s *State) MarkAbsent(ids ...string) {
	for _, id := range ids {
		s.absent[id] = true
	}
}

func (s *State) SetText(id, text string) { s.texts[id] = text }

func (s *State) SetHTML(id, markup string) { s.markup[id] = markup }

func (s *State) SetVisible(id string, visible bool) { s.hidden[id] = !visible }
func (s *State) SetEnabled(id string, enabled bool) { s.disabled[id] = !enabled }

func (s *State) Field(id string) string { return s.fields[id] }

func (s *State) SetField(id, value string) { s.fields[id] = value }

func (s *State) ResetForm(id string) {
	for _, field := range formFields[id] {
		delete(s.fields, field)
	}
}

func (s *State) Notify(message string) { s.notices = append(s.notices, message) }
func (s *State) Redirect(url string)   { s.redirect = url }

// Text returns the slot's text content.
func (s *State) Text(id string) string { return s.texts[id] }

// Markup returns the slot's rendered markup.
func (s *State) Markup(id string) string { return s.markup[id] }

// Visible reports whether the container is shown.
func (s *State) Visible(id string) bool { return !s.hidden[id] }

// Enabled reports whether the control or input accepts interaction.
func (s *State) Enabled(id string) bool { return !s.disabled[id] }

// Notices returns the raised notices without consuming them.
func (s *State) Notices() []string { return s.notices }

// TakeNotices returns and clears the pending notices.
func (s *State) TakeNotices() []string {
	n := s.notices
	s.notices = nil
	return n
}

// TakeRedirect returns and clears the pending navigation target, if any.
func (s *State) TakeRedirect() (string, bool) {
	if s.redirect == "" {
		return "", false
	}
	url := s.redirect
	s.redirect = ""
	return url, true
}
