package config

// Config holds all application configuration.
// It is constructed once at startup and injected into every component that
// needs it; there is no ambient global settings object.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the hosts permitted by the CORS middleware.
	// A single "*" entry allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`

	Debug bool `mapstructure:"debug"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
// The secret is required and deliberately has no default: changing it
// invalidates every outstanding token.
type AuthConfig struct {
	Secret               string `mapstructure:"secret"                 validate:"required,min=32"`
	Algorithm            string `mapstructure:"algorithm"              validate:"required,oneof=HS256 HS384 HS512"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
