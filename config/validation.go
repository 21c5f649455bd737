package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the fields the application cannot run without
// are present.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" {
		errs = append(errs, "DB_HOST must not be empty")
	}
	if cfg.DBPort == "" {
		errs = append(errs, "DB_PORT must not be empty")
	}
	if cfg.DBUser == "" {
		errs = append(errs, "DB_USER must not be empty")
	}
	if cfg.DBName == "" {
		errs = append(errs, "DB_NAME must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}
