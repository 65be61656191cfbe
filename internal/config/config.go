package config

// Config holds all application configuration.
// It is constructed once at process start and threaded into components via
// explicit injection; nothing reads configuration from ambient global state.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret is the symmetric key used to sign and verify tokens.
	// Must be long enough to resist brute force against HMAC-SHA256.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// Issuer and Audience are embedded in every token and checked on
	// validation; tokens minted for another deployment are rejected.
	Issuer   string `mapstructure:"issuer"   validate:"required"`
	Audience string `mapstructure:"audience" validate:"required"`

	// TokenLifetimeMinutes bounds how long an issued token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost is the bcrypt work factor for password hashing.
	// Tuned so that verification takes on the order of 100ms.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`

	// AdminSecretKey gates registration of Admin accounts. A registration
	// request asking for the Admin role must present this value.
	AdminSecretKey string `mapstructure:"admin_secret_key" validate:"required,max=56"`
}
