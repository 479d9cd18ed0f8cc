package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Device -> server
	EventPosition      = "position"
	EventPositionError = "position_error"

	// Server -> device
	EventFixRequest      = "fix_request"
	EventWatchStart      = "watch_start"
	EventWatchStop       = "watch_stop"
	EventPositionWarning = "position_warning"
	EventSessionEnded    = "session_ended"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorInternalError    = "internal_error"
	ErrorUnknownEvent     = "unknown_event"
)

// ErrorSeverity decides how much detail a client sees
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
