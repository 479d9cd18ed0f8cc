package models

import "time"

// Severity of a danger-zone alert
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether the severity is one of low, medium, high
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// DangerZoneRequest identifies a place by name or by coordinates
type DangerZoneRequest struct {
	LocationName string   `json:"location_name,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// DangerZoneAlert is a single incident near the requested place
type DangerZoneAlert struct {
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// DangerZoneResponse lists alerts; Notice explains a degraded result
type DangerZoneResponse struct {
	Alerts []DangerZoneAlert `json:"alerts"`
	Notice string            `json:"notice,omitempty"`
	Cached bool              `json:"cached,omitempty"`
}

// DistressRequest is either a text description or an audio sample with context
type DistressRequest struct {
	SituationText string `json:"situation_text,omitempty"`
	AudioDataURI  string `json:"audio_data_uri,omitempty"`
	PlaceName     string `json:"place_name,omitempty"`
	MovementData  string `json:"movement_data,omitempty"`
}

// IsAudio reports whether the request uses the audio variant
func (r DistressRequest) IsAudio() bool {
	return r.AudioDataURI != "" || r.PlaceName != "" || r.MovementData != ""
}

// DistressResponse is the normalized distress assessment
type DistressResponse struct {
	IsDistressed bool     `json:"is_distressed"`
	Reason       string   `json:"reason"`
	SafetyTips   []string `json:"safety_tips"`
}

// SOSRequest triggers an emergency alert to guardians
type SOSRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AudioRef  string  `json:"audio_ref,omitempty"`
	Silent    bool    `json:"silent"`
}

// SOSRecipient is a guardian targeted by an SOS alert
type SOSRecipient struct {
	GuardianID string   `json:"guardian_id"`
	Name       string   `json:"name"`
	Priority   Priority `json:"priority"`
	Error      string   `json:"error,omitempty"`
}

// SOSAlert is the outcome of an SOS trigger
type SOSAlert struct {
	ID                     string         `json:"id"`
	OwnerID                string         `json:"owner_id"`
	Position               Position       `json:"position"`
	AudioRef               string         `json:"audio_ref,omitempty"`
	Silent                 bool           `json:"silent"`
	Message                string         `json:"message"`
	Notified               []SOSRecipient `json:"notified"`
	Failed                 []SOSRecipient `json:"failed,omitempty"`
	SirenRequested         bool           `json:"siren_requested"`
	EmergencyCallRequested bool           `json:"emergency_call_requested"`
	Warnings               []string       `json:"warnings,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
}
