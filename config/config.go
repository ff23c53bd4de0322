// Package config loads the mado configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
	"gopkg.in/yaml.v3"
)

// ErrorCode defines error types for configuration handling
type ErrorCode string

const (
	ErrConfigLoad    ErrorCode = "ConfigLoadError"
	ErrConfigInvalid ErrorCode = "ConfigInvalid"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

var validate = validator.New()

// Config holds the record service settings.
// Flags may override individual fields after loading; call Validate on the
// merged result.
type Config struct {
	// Endpoint is the base URL of the record service
	Endpoint string `yaml:"endpoint" validate:"required,url"`

	// TimeoutMs is the per-request timeout in milliseconds
	TimeoutMs int `yaml:"timeout_ms" validate:"omitempty,gte=0"`

	// Record is the identifier fetched by the mount-time trigger when no
	// record argument is given
	Record string `yaml:"record"`
}

// DefaultPath returns the default location of the configuration file
func DefaultPath() string {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "mado", "config.yaml")
	}
	return filepath.Join(configHome, "mado", "config.yaml")
}

// Load reads the configuration from path. An empty path means the default
// location; a missing file at the default location yields an empty config so
// flags alone can configure everything.
func Load(path string) (*Config, error) {
	usingDefault := path == ""
	if usingDefault {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if usingDefault && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, failure.New(ErrConfigLoad,
			failure.Message("Failed to read configuration file: "+err.Error()),
			failure.Context{"path": path},
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, failure.New(ErrConfigLoad,
			failure.Message("Failed to parse configuration file: "+err.Error()),
			failure.Context{"path": path},
		)
	}

	return &cfg, nil
}

// Normalize applies defaults. It must be called before Validate-dependent
// accessors are used.
func (c *Config) Normalize() {
	if c.TimeoutMs == 0 {
		c.TimeoutMs = int(30 * time.Second / time.Millisecond)
	}
}

// Validate checks the merged configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return failure.New(ErrConfigInvalid,
			failure.Message("Invalid configuration: "+err.Error()),
		)
	}
	return nil
}

// Timeout returns the per-request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
