package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// MaxGuardians is the directory capacity per owner
const MaxGuardians = 5

// GuardianSetVersion is the schema version written with every persisted set
const GuardianSetVersion = 1

// ConsentStatus governs whether a guardian may receive location and alerts
type ConsentStatus string

const (
	ConsentNotSent  ConsentStatus = "Not Sent"
	ConsentPending  ConsentStatus = "Pending"
	ConsentAccepted ConsentStatus = "Accepted"
	ConsentDeclined ConsentStatus = "Declined"
)

// Valid reports whether the status is a known consent state
func (s ConsentStatus) Valid() bool {
	switch s {
	case ConsentNotSent, ConsentPending, ConsentAccepted, ConsentDeclined:
		return true
	}
	return false
}

// OnlineStatus is the presence state reported by a guardian's client
type OnlineStatus string

const (
	OnlineStatusOnline  OnlineStatus = "Online"
	OnlineStatusOffline OnlineStatus = "Offline"
	OnlineStatusUnknown OnlineStatus = "Unknown"
)

// Priority ranks guardians from 1 (highest) to 5 (lowest)
type Priority int

const (
	PriorityHighest Priority = 1
	PriorityDefault Priority = 3
	PriorityLowest  Priority = 5
)

// Valid reports whether the priority is within 1..5
func (p Priority) Valid() bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

// RelationSuggestions are offered to clients but not enforced
var RelationSuggestions = []string{
	"Mother", "Father", "Sibling", "Spouse", "Partner", "Friend", "Relative", "Neighbor", "Colleague", "Other",
}

// Guardian is a trusted contact eligible to receive safety alerts
type Guardian struct {
	ID                      string        `json:"id"`
	Name                    string        `json:"name"`
	Phone                   string        `json:"phone"`
	Relation                string        `json:"relation"`
	Priority                Priority      `json:"priority"`
	PhotoURL                string        `json:"photo_url,omitempty"`
	ConsentStatus           ConsentStatus `json:"consent_status"`
	OnlineStatus            OnlineStatus  `json:"online_status"`
	LastActive              *time.Time    `json:"last_active,omitempty"`
	LocationReceived        bool          `json:"location_received"`
	SOSResponseAcknowledged bool          `json:"sos_response_acknowledged"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

// EligibleForSharing reports whether the guardian may receive a shared location
func (g Guardian) EligibleForSharing() bool {
	return g.ConsentStatus != ConsentDeclined
}

// GuardianInput carries the editable guardian fields. Consent is not
// editable; it moves only through invitations and guardian answers.
type GuardianInput struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Relation string    `json:"relation"`
	Priority *Priority `json:"priority,omitempty"`
	PhotoURL string    `json:"photo_url,omitempty"`
}

// GuardianSet is the persisted directory record for one owner
type GuardianSet struct {
	Version   int        `json:"version"`
	Guardians []Guardian `json:"guardians"`
}

// NewGuardianSet returns an empty set at the current schema version
func NewGuardianSet() *GuardianSet {
	return &GuardianSet{Version: GuardianSetVersion, Guardians: []Guardian{}}
}

// Clone returns a deep copy so callers can mutate without touching the original
func (s *GuardianSet) Clone() *GuardianSet {
	out := &GuardianSet{Version: s.Version, Guardians: make([]Guardian, len(s.Guardians))}
	copy(out.Guardians, s.Guardians)
	for i := range out.Guardians {
		if t := out.Guardians[i].LastActive; t != nil {
			v := *t
			out.Guardians[i].LastActive = &v
		}
	}
	return out
}

// IndexOf returns the position of the guardian with id, or -1
func (s *GuardianSet) IndexOf(id string) int {
	for i := range s.Guardians {
		if s.Guardians[i].ID == id {
			return i
		}
	}
	return -1
}

// DecodeGuardianSet parses a persisted set. A bare JSON array from the
// unversioned layout is accepted and upgraded.
func DecodeGuardianSet(data []byte) (*GuardianSet, error) {
	if len(data) == 0 {
		return NewGuardianSet(), nil
	}
	if data[0] == '[' {
		var guardians []Guardian
		if err := json.Unmarshal(data, &guardians); err != nil {
			return nil, fmt.Errorf("failed to decode guardian list: %w", err)
		}
		return &GuardianSet{Version: GuardianSetVersion, Guardians: guardians}, nil
	}

	var set GuardianSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to decode guardian set: %w", err)
	}
	if set.Version > GuardianSetVersion {
		return nil, fmt.Errorf("unsupported guardian set version %d", set.Version)
	}
	if set.Guardians == nil {
		set.Guardians = []Guardian{}
	}
	set.Version = GuardianSetVersion
	return &set, nil
}

// PresenceEvent is published by a guardian's client when it comes online or goes away
type PresenceEvent struct {
	OwnerID    string    `json:"owner_id"`
	GuardianID string    `json:"guardian_id"`
	Online     bool      `json:"online"`
	At         time.Time `json:"at"`
}

// ConsentResponseEvent carries a guardian's answer to a consent invitation
type ConsentResponseEvent struct {
	OwnerID    string `json:"owner_id"`
	GuardianID string `json:"guardian_id"`
	Accepted   bool   `json:"accepted"`
}

// SOSAckEvent is published when a guardian acknowledges an SOS alert
type SOSAckEvent struct {
	OwnerID    string    `json:"owner_id"`
	GuardianID string    `json:"guardian_id"`
	AlertID    string    `json:"alert_id"`
	At         time.Time `json:"at"`
}
