package services

import "lai_landing_go/models"

// Interaction action names, used for metrics labels and logging
const (
	ActionTryAssistant    = "try_assistant"
	ActionSelectService   = "select_service"
	ActionActivateFeature = "activate_feature"
	ActionNavigate        = "navigate"
	ActionOpenLogin       = "open_login"
	ActionCancelLogin     = "cancel_login"
	ActionSubmitLogin     = "submit_login"
)

// Outcome is the visible result of an interaction: a placeholder
// notification, the login modal opening, or neither.
type Outcome struct {
	Notification *models.Notification
	ModalOpened  bool
}

// Label returns a short outcome name for metrics
func (o Outcome) Label() string {
	switch {
	case o.ModalOpened:
		return "modal"
	case o.Notification != nil:
		return "notification"
	default:
		return "state"
	}
}

func notify(kind models.NotificationKind, subject string) Outcome {
	return Outcome{Notification: &models.Notification{Kind: kind, Subject: subject}}
}

// requireLogin opens the modal when the session flag is not set.
// It reports whether the caller may go on with its nominal effect.
func requireLogin(state *models.ViewState) (Outcome, bool) {
	if !state.LoggedIn {
		state.ShowLoginModal = true
		return Outcome{ModalOpened: true}, false
	}
	return Outcome{}, true
}

// TryAssistant handles the hero "Try out" button
func TryAssistant(state *models.ViewState) Outcome {
	if out, ok := requireLogin(state); !ok {
		return out
	}
	return notify(models.NotificationAssistant, "")
}

// SelectService handles a click on a service card.
// Unlike features, services are not gated behind the login modal.
func SelectService(state *models.ViewState, name string) Outcome {
	return notify(models.NotificationService, name)
}

// ActivateFeature handles a click on a key feature button
func ActivateFeature(state *models.ViewState, name string) Outcome {
	if out, ok := requireLogin(state); !ok {
		return out
	}
	return notify(models.NotificationFeature, name)
}

// Navigate handles navigation bar links. There are no other pages, so it only notifies.
func Navigate(state *models.ViewState, section string) Outcome {
	return notify(models.NotificationNavigation, section)
}

// OpenLogin opens the login modal from the navigation bar button
func OpenLogin(state *models.ViewState) Outcome {
	state.ShowLoginModal = true
	return Outcome{ModalOpened: true}
}

// CancelLogin closes the login modal and leaves the session flag untouched
func CancelLogin(state *models.ViewState) Outcome {
	state.ShowLoginModal = false
	return Outcome{}
}

// SubmitLogin marks the visitor as logged in and closes the modal.
// The email and password fields are deliberately not inspected.
func SubmitLogin(state *models.ViewState) Outcome {
	state.LoggedIn = true
	state.ShowLoginModal = false
	return Outcome{}
}

// LoginButtonLabelKey returns the i18n key for the navigation bar button
func LoginButtonLabelKey(state models.ViewState) string {
	if state.LoggedIn {
		return "nav.dashboard"
	}
	return "nav.login"
}
