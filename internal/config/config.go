package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvDatabaseURL overrides the configured Postgres DSN when set. It is
// usually supplied through a .env file loaded at startup.
const EnvDatabaseURL = "VOLUNTEERHUB_DATABASE_URL"

const configFileName = "volunteerhub.yaml"

// StorageConfig selects and parameterizes the store engine.
type StorageConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=sqlite postgres memory"`
	Path   string `yaml:"path,omitempty" validate:"required_if=Driver sqlite"`
	DSN    string `yaml:"dsn,omitempty" validate:"required_if=Driver postgres"`
}

// Config represents the application configuration
type Config struct {
	Storage             StorageConfig `yaml:"storage"`
	PollIntervalSeconds int           `yaml:"pollIntervalSeconds,omitempty" validate:"omitempty,min=1,max=60"`
}

// PollInterval returns the reconciliation poll cadence, defaulting to the
// original screens' 2-second refresh.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from volunteerhub.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.Driver == "sqlite" && cfg.Storage.Path == "" {
		cfg.Storage.Path = "volunteerhub.db"
	}
}

func applyEnvOverrides(cfg *Config) {
	if dsn := os.Getenv(EnvDatabaseURL); dsn != "" {
		cfg.Storage.DSN = dsn
	}
}

// findConfigFile searches for volunteerhub.yaml in current directory and home directory
func findConfigFile() (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
