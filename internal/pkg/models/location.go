package models

import (
	"encoding/json"
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// Position is a single geolocation fix
type Position struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	CapturedAt     time.Time `json:"captured_at"`
}

// PositionEvent is one item of a position feed: either a fix or an error
type PositionEvent struct {
	Position *Position
	Err      *PositionError
}

// SessionState is the lifecycle state of a location-sharing session
type SessionState string

const (
	SessionInactive  SessionState = "inactive"
	SessionAcquiring SessionState = "acquiring"
	SessionActive    SessionState = "active"
)

// DurationPresets are the selectable sharing durations in minutes
var DurationPresets = []int{30, 60, 120, 240}

// MaxSessionGuardians bounds the guardian selection of a session
const MaxSessionGuardians = 5

// ShareSelection is the input of a session start
type ShareSelection struct {
	GuardianIDs   []string `json:"guardian_ids"`
	Duration      string   `json:"duration"` // "30", "60", "120", "240" or "custom"
	CustomMinutes int      `json:"custom_minutes,omitempty"`
}

// SessionSnapshot is a read-only view of a session
type SessionSnapshot struct {
	ID              string         `json:"id,omitempty"`
	OwnerID         string         `json:"owner_id"`
	State           SessionState   `json:"state"`
	GuardianIDs     []string       `json:"guardian_ids"`
	DurationMinutes int            `json:"duration_minutes,omitempty"`
	CurrentPosition *Position      `json:"current_position,omitempty"`
	ShareableLink   string         `json:"shareable_link,omitempty"`
	TrackingURL     string         `json:"tracking_url,omitempty"`
	Warning         *PositionError `json:"warning,omitempty"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	ExpiresAt       *time.Time     `json:"expires_at,omitempty"`
}

// ShareChannel is an external messaging channel for handing off a link
type ShareChannel string

const (
	ChannelWhatsApp ShareChannel = "whatsapp"
	ChannelSMS      ShareChannel = "sms"
)

// ShareIntent describes how a client should open the external channel
type ShareIntent struct {
	Channel  ShareChannel `json:"channel"`
	URL      string       `json:"url"`
	Message  string       `json:"message"`
	Warnings []string     `json:"warnings,omitempty"`
}

// SharedLocation is what a public share token resolves to
type SharedLocation struct {
	Position  Position  `json:"position"`
	Geohash   string    `json:"geohash"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionEvent is published on session lifecycle changes and position updates
type SessionEvent struct {
	SessionID   string    `json:"session_id"`
	OwnerID     string    `json:"owner_id"`
	GuardianIDs []string  `json:"guardian_ids,omitempty"`
	Position    *Position `json:"position,omitempty"`
	Geohash     string    `json:"geohash,omitempty"`
	MovedKm     float64   `json:"moved_km,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	At          time.Time `json:"at"`
}

// DeviceFix is the payload a device sends for a fix or an acquisition error
type DeviceFix struct {
	Latitude       *float64          `json:"latitude,omitempty"`
	Longitude      *float64          `json:"longitude,omitempty"`
	AccuracyMeters float64           `json:"accuracy_meters,omitempty"`
	CapturedAt     *time.Time        `json:"captured_at,omitempty"`
	ErrorCode      PositionErrorCode `json:"error_code,omitempty"`
	ErrorMessage   string            `json:"error_message,omitempty"`
}

// WSMessage is one frame on the device feed, in either direction
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the payload of an "error" frame sent to the device
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
