package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is
// "local" (the default) the env file at configPath is loaded first.
func InitConfig(configPath string) (*models.Config, error) {
	v := newViper()

	if v.GetString("app.env") == "local" && configPath != "" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// newViper binds every config key to its upper-snake environment variable
// (app.env -> APP_ENV, rate_limit.requests -> RATE_LIMIT_REQUESTS).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	// App config
	v.SetDefault("app.name", "shesafe")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	// Server config
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	// Database config
	v.SetDefault("database.driver", "pgx")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "shesafe")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	// Redis config
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// NATS config
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.stream_name", "SHESAFE")

	// NSQ config
	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.notifications_topic", constants.TopicNotifications)
	v.SetDefault("nsq.channel", constants.ChannelSMSDispatch)

	// JWT config
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 1440)
	v.SetDefault("jwt.issuer", "shesafe")

	// NewRelic config
	v.SetDefault("newrelic.license_key", "")
	v.SetDefault("newrelic.app_name", "shesafe")
	v.SetDefault("newrelic.enabled", false)
	v.SetDefault("newrelic.forward_logs", false)

	// Logger config
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "logs/shesafe.log")

	// Domain config
	v.SetDefault("guardians.store", "redis")
	v.SetDefault("location.fix_timeout_seconds", 12)
	v.SetDefault("location.maps_base_url", "https://maps.google.com/")
	v.SetDefault("location.share_base_url", "http://localhost:9990")
	v.SetDefault("location.geohash_precision", 7)
	v.SetDefault("safety.api_key", "")
	v.SetDefault("safety.model", "gemini-2.0-flash")
	v.SetDefault("safety.timeout_seconds", 30)
	v.SetDefault("safety.danger_cache_ttl_seconds", 600)
	v.SetDefault("sms.enabled", false)
	v.SetDefault("sms.base_url", "https://api.twilio.com")
	v.SetDefault("sms.account_sid", "")
	v.SetDefault("sms.auth_token", "")
	v.SetDefault("sms.from", "")
	v.SetDefault("sms.max_retries", 3)
	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.period_seconds", 60)
}

func validate(cfg *models.Config) error {
	switch cfg.Guardians.Store {
	case "redis", "postgres":
	default:
		return fmt.Errorf("invalid GUARDIANS_STORE %q: must be redis or postgres", cfg.Guardians.Store)
	}
	if cfg.Location.FixTimeoutSeconds <= 0 {
		return fmt.Errorf("LOCATION_FIX_TIMEOUT_SECONDS must be positive")
	}
	if cfg.Safety.TimeoutSeconds <= 0 {
		return fmt.Errorf("SAFETY_TIMEOUT_SECONDS must be positive")
	}
	if cfg.App.Environment != "local" && cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required outside local environment")
	}
	return nil
}
