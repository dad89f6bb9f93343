package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string   `env:"PORT" envDefault:"3000"`
	ServerHost  string   `env:"SERVER_HOST"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// Database configuration
	DBType            string `env:"DB_TYPE" envDefault:"mysql"`
	DBHost            string `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string `env:"DB_PORT" envDefault:"3306"`
	DBUser            string `env:"DB_USER"`
	DBPassword        string `env:"DB_PASSWORD"`
	DBName            string `env:"DB_NAME"`
	DBConnectionLimit int    `env:"DB_CONNECTION_LIMIT" envDefault:"4"`

	// Auth configuration
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Recipe provider configuration
	SpoonacularAPIKey   string        `env:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL  string        `env:"SPOONACULAR_BASE_URL" envDefault:"https://api.spoonacular.com/recipes"`
	ProviderTimeout     time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
	ProviderConcurrency int           `env:"PROVIDER_CONCURRENCY" envDefault:"5"`

	// Redis configuration (token revocation)
	RedisURL      string `env:"REDIS_URL"`
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Profile picture storage
	S3BucketName string `env:"S3_BUCKET_NAME"`
	AWSRegion    string `env:"AWS_REGION"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// secretFields maps Docker secret file names to the sensitive fields they populate
var secretFields = map[string]func(cfg *Config) *string{
	"db_password":         func(cfg *Config) *string { return &cfg.DBPassword },
	"jwt_secret":          func(cfg *Config) *string { return &cfg.JWTSecret },
	"spoonacular_api_key": func(cfg *Config) *string { return &cfg.SpoonacularAPIKey },
	"redis_password":      func(cfg *Config) *string { return &cfg.RedisPassword },
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Load secrets based on environment
	switch GetEnvironment() {
	case CI:
		// CI uses environment variables only
	case Production:
		loadSecrets(cfg, true)
	default:
		loadSecrets(cfg, false)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadSecrets fills sensitive fields from Docker secrets. When override is
// false a secret only fills a field the environment left empty.
func loadSecrets(cfg *Config, override bool) {
	for name, field := range secretFields {
		value := readSecret(name)
		if value == "" {
			continue
		}
		target := field(cfg)
		if override || *target == "" {
			*target = value
		}
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// S3Enabled reports whether profile picture storage is configured
func (c *Config) S3Enabled() bool {
	return c.S3BucketName != "" && c.AWSRegion != ""
}
