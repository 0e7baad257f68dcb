package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskflow application.
type Config struct {
	Database   DatabaseConfig
	Session    SessionConfig
	Auth       AuthConfig
	Validation ValidationConfig
	Seed       SeedConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Dir          string        `env:"TF_DB_DIR"`
	Filename     string        `env:"TF_DB_FILENAME"`
	QueryTimeout time.Duration `env:"TF_DB_QUERY_TIMEOUT"`
}

// SessionConfig holds session persistence configuration.
type SessionConfig struct {
	SlotName string `env:"TF_SESSION_SLOT"`
}

// AuthConfig holds configuration for the simulated authentication
// provider.
type AuthConfig struct {
	SimulatedLatency time.Duration `env:"TF_AUTH_LATENCY"`
}

// ValidationConfig holds validation rules configuration.
type ValidationConfig struct {
	TitleMaxLength        int `env:"TF_VALIDATION_TITLE_MAX"`
	CategoryNameMaxLength int `env:"TF_VALIDATION_CATEGORY_NAME_MAX"`
	PasswordMinLength     int `env:"TF_VALIDATION_PASSWORD_MIN"`
}

// SeedConfig controls installation of the default categories and
// sample tasks on first run.
type SeedConfig struct {
	Enabled bool `env:"TF_SEED"`
}

// NewConfig creates a new configuration with sensible defaults.
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskflow")

	return &Config{
		Database: DatabaseConfig{
			Dir:          defaultDBDir,
			Filename:     "taskflow.db",
			QueryTimeout: 10 * time.Second,
		},
		Session: SessionConfig{
			SlotName: "taskflow_user",
		},
		Auth: AuthConfig{
			SimulatedLatency: 0,
		},
		Validation: ValidationConfig{
			TitleMaxLength:        255,
			CategoryNameMaxLength: 100,
			PasswordMinLength:     8,
		},
		Seed: SeedConfig{
			Enabled: true,
		},
	}
}

// GetDatabasePath returns the full path to the database file.
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TF_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TF_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TF_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}

	if slot := os.Getenv("TF_SESSION_SLOT"); slot != "" {
		c.Session.SlotName = slot
	}

	if latency := os.Getenv("TF_AUTH_LATENCY"); latency != "" {
		if d, err := time.ParseDuration(latency); err == nil {
			c.Auth.SimulatedLatency = d
		}
	}

	if maxLen := os.Getenv("TF_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TF_VALIDATION_CATEGORY_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.CategoryNameMaxLength = n
		}
	}
	if minLen := os.Getenv("TF_VALIDATION_PASSWORD_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.PasswordMinLength = n
		}
	}

	if seed := os.Getenv("TF_SEED"); seed != "" {
		if b, err := strconv.ParseBool(seed); err == nil {
			c.Seed.Enabled = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Session.SlotName == "" {
		return &ConfigError{Field: "session.slot_name", Message: "session slot name cannot be empty"}
	}
	if c.Auth.SimulatedLatency < 0 {
		return &ConfigError{Field: "auth.simulated_latency", Message: "simulated latency cannot be negative"}
	}
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.CategoryNameMaxLength < 1 {
		return &ConfigError{Field: "validation.category_name_max_length", Message: "category name maximum length must be at least 1"}
	}
	if c.Validation.PasswordMinLength < 1 {
		return &ConfigError{Field: "validation.password_min_length", Message: "password minimum length must be at least 1"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// Load builds the effective configuration using the cascading
// strategy: defaults first, then environment overrides, then
// validation.
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
