package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment variable names. These mirror the conventional deployment
// settings for the service; none carry a prefix so that a plain
// DATABASE_URL / SECRET_KEY environment works out of the box.
const (
	envPort            = "PORT"
	envLogLevel        = "LOG_LEVEL"
	envDebug           = "DEBUG"
	envCORSOrigins     = "BACKEND_CORS_ORIGINS"
	envDatabaseURL     = "DATABASE_URL"
	envSecretKey       = "SECRET_KEY"
	envAlgorithm       = "ALGORITHM"
	envTokenTTLMinutes = "ACCESS_TOKEN_EXPIRE_MINUTES"
)

// Load reads configuration from environment variables into a validated
// Config. Every setting except the signing secret has a sensible default;
// the secret is required so a misconfigured deployment fails fast instead
// of signing tokens with an empty key.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.debug", false)
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.token_lifetime_minutes", 30)

	// Environment bindings
	bindings := map[string]string{
		"server.port":                 envPort,
		"server.log_level":            envLogLevel,
		"server.debug":                envDebug,
		"server.allowed_origins":      envCORSOrigins,
		"database.url":                envDatabaseURL,
		"auth.secret":                 envSecretKey,
		"auth.algorithm":              envAlgorithm,
		"auth.token_lifetime_minutes": envTokenTTLMinutes,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Comma-separated origin lists arrive as a single string from the
	// environment; split them before validation.
	if len(cfg.Server.AllowedOrigins) == 1 && strings.Contains(cfg.Server.AllowedOrigins[0], ",") {
		parts := strings.Split(cfg.Server.AllowedOrigins[0], ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
