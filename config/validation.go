package config

import (
	"errors"
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredFields []string
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {
			RequiredFields: []string{"DB_NAME", "JWT_SECRET", "SPOONACULAR_API_KEY"},
		},
		Test: {
			RequiredFields: []string{"JWT_SECRET"},
		},
		CI: {
			RequiredFields: []string{"DB_NAME", "DB_USER", "DB_PASSWORD", "JWT_SECRET"},
		},
		Production: {
			RequiredFields: []string{"DB_NAME", "DB_USER", "DB_PASSWORD", "JWT_SECRET", "SPOONACULAR_API_KEY"},
		},
	}

	supportedDBTypes = map[string]bool{
		"mysql":    true,
		"postgres": true,
		"sqlite":   true,
	}
)

// fieldValue returns the configured value for a required field name
func fieldValue(cfg *Config, name string) string {
	switch name {
	case "DB_NAME":
		return cfg.DBName
	case "DB_USER":
		return cfg.DBUser
	case "DB_PASSWORD":
		return cfg.DBPassword
	case "JWT_SECRET":
		return cfg.JWTSecret
	case "SPOONACULAR_API_KEY":
		return cfg.SpoonacularAPIKey
	default:
		return ""
	}
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[GetEnvironment()]

	var errs []error

	for _, name := range reqs.RequiredFields {
		if fieldValue(cfg, name) == "" {
			errs = append(errs, ValidationError{Field: name, Message: "is required"})
		}
	}

	if !supportedDBTypes[cfg.DBType] {
		errs = append(errs, ValidationError{Field: "DB_TYPE", Message: fmt.Sprintf("unsupported database type %q", cfg.DBType)})
	}
	if cfg.DBConnectionLimit <= 0 {
		errs = append(errs, ValidationError{Field: "DB_CONNECTION_LIMIT", Message: "must be positive"})
	}
	// bcrypt accepts costs in [4, 31]
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		errs = append(errs, ValidationError{Field: "BCRYPT_COST", Message: "must be between 4 and 31"})
	}
	if cfg.ProviderConcurrency <= 0 {
		errs = append(errs, ValidationError{Field: "PROVIDER_CONCURRENCY", Message: "must be positive"})
	}
	if cfg.TokenTTL <= 0 {
		errs = append(errs, ValidationError{Field: "TOKEN_TTL", Message: "must be positive"})
	}

	return errors.Join(errs...)
}
