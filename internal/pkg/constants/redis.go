package constants

// Redis key formats
const (
	// Guardian Directory
	KeyGuardianSet = "guardians:%s" // Format: guardians:{owner_id}

	// Location Service
	KeySessionLocation = "location:session:%s" // Format: location:session:{owner_id}
	KeyShareToken      = "location:token:%s"   // Format: location:token:{token}
	KeySessionGeo      = "location:geo"        // Geo set of owners with an active session

	// Safety Service
	KeyDangerAlerts = "safety:danger:%s" // Format: safety:danger:{cell}

	// Rate Limiting
	KeyRateLimit = "rate:limit"
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAccuracy  = "acc"
	FieldTimestamp = "ts"
	FieldGeohash   = "gh"
	FieldExpiresAt = "exp"
)
