package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env         string         // Env is the current environment: local, dev, prod.
	HTTPAddress string         // HTTPAddress is the listen address of the API server.
	CORSOrigin  string         // CORSOrigin is the allowed frontend origin.
	Postgres    PostgresConfig // Postgres holds the database configuration.
	Auth        AuthConfig     // Auth holds token signing and bootstrap credentials.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// AuthConfig struct holds the signing secret and the bootstrap password
// policy. The secret has no fallback: a process without one must not
// come up. DefaultPassword is the documented initial credential for
// auto-created accounts and is expected to be rotated by the user.
type AuthConfig struct {
	JWTSecret       string        // JWTSecret signs identity tokens. Mandatory.
	TokenTTL        time.Duration // TokenTTL is the token lifetime.
	DefaultPassword string        // DefaultPassword is assigned to newly created accounts.
}

const defaultTokenTTL = 8 * time.Hour

// MustLoad reads configuration from an optional CONFIG_PATH file and the
// environment, env taking precedence. It panics on missing required
// values: a half-configured process must not start.
func MustLoad() *Config {
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("HERA_ENV", "local")
	viper.SetDefault("HTTP_ADDRESS", ":8080")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("JWT_TTL", defaultTokenTTL)
	viper.SetDefault("DEFAULT_PASSWORD", "welcome123")

	cfg := &Config{
		Env:         viper.GetString("HERA_ENV"),
		HTTPAddress: viper.GetString("HTTP_ADDRESS"),
		CORSOrigin:  viper.GetString("CORS_ORIGIN"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USERNAME"),
			Password: viper.GetString("DB_PASSWORD"),
			Dbname:   viper.GetString("DB_NAME"),
		},
		Auth: AuthConfig{
			JWTSecret:       viper.GetString("JWT_SECRET"),
			TokenTTL:        viper.GetDuration("JWT_TTL"),
			DefaultPassword: viper.GetString("DEFAULT_PASSWORD"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		panic("JWT_SECRET is not configured, refusing to start")
	}
	if cfg.Auth.TokenTTL <= 0 {
		panic("failed to parse token TTL from configuration")
	}

	return cfg
}
