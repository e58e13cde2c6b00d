package models

// NotificationKind identifies which placeholder message a notification carries
type NotificationKind string

const (
	NotificationAssistant  NotificationKind = "assistant"
	NotificationService    NotificationKind = "service"
	NotificationFeature    NotificationKind = "feature"
	NotificationNavigation NotificationKind = "navigation"
)

// Notification is a stand-in for navigation or feature activation.
// Subject is the service, feature or section the visitor picked; it is empty
// for the assistant notification.
type Notification struct {
	Kind    NotificationKind
	Subject string
}

// MessageKey returns the i18n key for the notification text
func (n Notification) MessageKey() string {
	return "notify." + string(n.Kind)
}
