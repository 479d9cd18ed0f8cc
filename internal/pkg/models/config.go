package models

// Config represents application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NATS      NATSConfig      `mapstructure:"nats"`
	NSQ       NSQConfig       `mapstructure:"nsq"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	NewRelic  NewRelicConfig  `mapstructure:"newrelic"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Guardians GuardiansConfig `mapstructure:"guardians"`
	Location  LocationConfig  `mapstructure:"location"`
	Safety    SafetyConfig    `mapstructure:"safety"`
	SMS       SMSConfig       `mapstructure:"sms"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string `mapstructure:"driver"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string `mapstructure:"url"`
	StreamName string `mapstructure:"stream_name"`
}

// NSQConfig contains NSQ daemon addresses and topic settings
type NSQConfig struct {
	Address            string `mapstructure:"address"`
	NotificationsTopic string `mapstructure:"notifications_topic"`
	Channel            string `mapstructure:"channel"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string `mapstructure:"license_key"`
	AppName     string `mapstructure:"app_name"`
	Enabled     bool   `mapstructure:"enabled"`
	ForwardLogs bool   `mapstructure:"forward_logs"`
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// GuardiansConfig selects the guardian directory backend
type GuardiansConfig struct {
	Store string `mapstructure:"store"` // "redis" or "postgres"
}

// LocationConfig contains location-sharing settings
type LocationConfig struct {
	FixTimeoutSeconds int    `mapstructure:"fix_timeout_seconds"`
	MapsBaseURL       string `mapstructure:"maps_base_url"`
	ShareBaseURL      string `mapstructure:"share_base_url"`
	GeohashPrecision  uint   `mapstructure:"geohash_precision"`
}

// SafetyConfig contains AI provider settings
type SafetyConfig struct {
	APIKey                string `mapstructure:"api_key"`
	Model                 string `mapstructure:"model"`
	TimeoutSeconds        int    `mapstructure:"timeout_seconds"`
	DangerCacheTTLSeconds int    `mapstructure:"danger_cache_ttl_seconds"`
}

// SMSConfig contains the Twilio-compatible SMS gateway settings
type SMSConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BaseURL    string `mapstructure:"base_url"`
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	From       string `mapstructure:"from"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// RateLimitConfig contains per-route request limits
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	PeriodSeconds int `mapstructure:"period_seconds"`
}
