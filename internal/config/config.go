package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"      validate:"required"`
	Recommend RecommendConfig `mapstructure:"recommend" validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSAllowedOrigins lists origins allowed to call the API from a
	// browser. An empty list disables cross-origin requests.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=0,lte=31"`
}

// RecommendConfig contains settings for the recommendation engine and the
// background score-refresh worker.
type RecommendConfig struct {
	// ScoreRefreshQueueSize bounds the score-refresh worker's queue.
	ScoreRefreshQueueSize int `mapstructure:"score_refresh_queue_size" validate:"required,gt=0"`

	// ScoreRefreshWorkers is the number of goroutines persisting
	// refreshed score caches.
	ScoreRefreshWorkers int `mapstructure:"score_refresh_workers" validate:"required,gt=0"`
}
