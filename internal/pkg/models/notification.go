package models

import "time"

// NotificationKind classifies an outbound message
type NotificationKind string

const (
	NotificationConsentInvite NotificationKind = "consent_invite"
	NotificationSOSAlert      NotificationKind = "sos_alert"
	NotificationShareLink     NotificationKind = "share_link"
)

// Notification is queued for SMS delivery to a guardian
type Notification struct {
	ID         string           `json:"id"`
	Kind       NotificationKind `json:"kind"`
	OwnerID    string           `json:"owner_id"`
	GuardianID string           `json:"guardian_id,omitempty"`
	To         string           `json:"to"`
	Body       string           `json:"body"`
	CreatedAt  time.Time        `json:"created_at"`
}
