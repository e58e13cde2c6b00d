package models

// ViewState is the transient state of one visitor's view of the landing page.
// The zero value is the state of a freshly loaded page.
type ViewState struct {
	VisitorID string

	// LoggedIn is the session flag. It only ever moves from false to true.
	LoggedIn bool
	// ShowLoginModal is the modal visibility flag.
	ShowLoginModal bool
}

// IsNew reports whether the state has not been assigned a visitor yet
func (s *ViewState) IsNew() bool {
	return s.VisitorID == ""
}
