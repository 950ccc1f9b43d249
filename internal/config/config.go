package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds reception desk settings shared by the hotel-desk commands.
type Config struct {
	// RoomCount is the number of rooms the desk manages.
	RoomCount int `yaml:"room_count"`
	// AuditLog is the path to the append-only audit trail file.
	AuditLog string `yaml:"audit_log"`
	// UsersFile is the path to the YAML user registry.
	UsersFile string `yaml:"users_file"`
	// LogLevel is the application log level (debug, info, warn, error, fatal).
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the default filename for desk settings.
	DefaultConfigFilename = "hotel-desk-settings.yaml"

	// DefaultAuditFilename is the default filename for the audit trail.
	DefaultAuditFilename = "hotel-desk-audit.log"

	// DefaultUsersFilename is the default filename for the user registry.
	DefaultUsersFilename = "hotel-desk-users.yaml"

	// DefaultRoomCount is the number of rooms when settings do not say otherwise.
	DefaultRoomCount = 10

	// DefaultFilePermissions is the default file permission for desk files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errRoomCountNegative is returned when the room count is below zero.
	errRoomCountNegative = errors.New("room count must not be negative")
)

// Load reads configuration from the provided path and validates essential fields.
// A missing path falls back to DefaultConfigFilename; a missing file yields
// a configuration with defaults so the desk can start without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := new(Config)
			if err := Validate(cfg); err != nil {
				return nil, err
			}

			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.RoomCount < 0 {
		return errRoomCountNegative
	}

	// Set default room count if not specified.
	if cfg.RoomCount == 0 {
		cfg.RoomCount = DefaultRoomCount
	}

	// Set default file locations if not specified.
	if cfg.AuditLog == "" {
		cfg.AuditLog = DefaultAuditFilename
	}

	if cfg.UsersFile == "" {
		cfg.UsersFile = DefaultUsersFilename
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return nil
}
