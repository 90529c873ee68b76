package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Issuer claim for session tokens

	AdminTokenTTL time.Duration // Lifetime of tokens minted for admins (default: 30m)
	UserTokenTTL  time.Duration // Lifetime of tokens minted for plain users (default: 744h)

	DatabaseDriver string // "sqlite" or "postgres" (default: sqlite)
	DatabaseFile   string // Path to SQLite database file (default: ./auth.db)
	DatabaseURL    string // Postgres connection string (required for the postgres driver)

	KeySource        string // "vault" or "static" (default: static)
	VaultAddress     string // Vault server address (vault source)
	VaultToken       string // Vault token (vault source)
	VaultMount       string // KV v2 mount holding key material (default: secret)
	VaultPrivatePath string // Path to the private key secret (default: security)
	VaultPublicPath  string // Path to the public key secret (default: public)
	PrivateKeyFile   string // Path to private key file (static source)
	PublicKeyFile    string // Path to public key file (static source)

	BootstrapAdminName     string // Optional: seed admin username for an empty directory
	BootstrapAdminPassword string // Optional: seed admin password

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// Production reports whether the service runs in production mode, which
// controls things like the Secure flag on session cookies.
func (c Config) Production() bool {
	return c.Env == "prod"
}

func LoadConfig() Config {
	cfg := Config{
		Issuer: getEnvOrDefault("AUTH_ISSUER", "DefenseDrillWeb"),

		AdminTokenTTL: getEnvDurationOrDefault("AUTH_ADMIN_TOKEN_TTL", 30*time.Minute),
		UserTokenTTL:  getEnvDurationOrDefault("AUTH_USER_TOKEN_TTL", 744*time.Hour),

		DatabaseDriver: getEnvOrDefault("AUTH_DATABASE_DRIVER", "sqlite"),
		DatabaseFile:   getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		DatabaseURL:    os.Getenv("AUTH_DATABASE_URL"),

		KeySource:        getEnvOrDefault("AUTH_KEY_SOURCE", "static"),
		VaultAddress:     os.Getenv("VAULT_ADDR"),
		VaultToken:       os.Getenv("VAULT_TOKEN"),
		VaultMount:       getEnvOrDefault("AUTH_VAULT_MOUNT", "secret"),
		VaultPrivatePath: getEnvOrDefault("AUTH_VAULT_PRIVATE_PATH", "security"),
		VaultPublicPath:  getEnvOrDefault("AUTH_VAULT_PUBLIC_PATH", "public"),
		PrivateKeyFile:   os.Getenv("AUTH_PRIVATE_KEY_FILE"),
		PublicKeyFile:    os.Getenv("AUTH_PUBLIC_KEY_FILE"),

		BootstrapAdminName:     os.Getenv("AUTH_BOOTSTRAP_ADMIN_NAME"),
		BootstrapAdminPassword: os.Getenv("AUTH_BOOTSTRAP_ADMIN_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
