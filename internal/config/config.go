package config

// Token carrier modes for the auth middleware. A deployment picks exactly
// one: cookie mode stores the token in an HTTP-only "jwt" cookie, bearer
// mode expects an "Authorization: Bearer" header.
const (
	CarrierCookie = "cookie"
	CarrierBearer = "bearer"
)

// EnvProduction is the Server.Env value under which the dev signing secret
// fallback is refused.
const EnvProduction = "production"

// DevJWTSecret is the well-known signing secret used outside production when
// no secret is configured. It exists only to make local and test runs
// deterministic and must never be set as a production secret.
const DevJWTSecret = "placecards-dev-secret-do-not-use-in-production"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Env      string `mapstructure:"env"       validate:"required"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs identity tokens. Optional outside production: Load
	// substitutes DevJWTSecret when it is empty and Env is not production.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenCarrier selects how the auth middleware receives the token.
	TokenCarrier string `mapstructure:"token_carrier" validate:"required,oneof=cookie bearer"`
}

// IsProduction reports whether the server runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return c.Env == EnvProduction
}
