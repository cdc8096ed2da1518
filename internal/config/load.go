package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and returns a
// validated Config. Environment variables use the SKILLPATH_ prefix with
// underscores separating nested keys, e.g. SKILLPATH_SERVER_PORT.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SKILLPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every
	// key without a default has to be bound explicitly.
	for _, key := range []string{
		"server.cors_allowed_origins",
		"database.url",
		"auth.jwt_secret",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 10080)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("recommend.score_refresh_queue_size", 256)
	v.SetDefault("recommend.score_refresh_workers", 2)
}
