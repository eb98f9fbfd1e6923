package validation

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sherzoddehqon/pilot-water/pkg/network"
)

// Config carries the tunable validation policies. Zero values fall back
// to the strict defaults.
type Config struct {
	// TypingPolicy selects how unknown id prefixes are typed: "strict"
	// keeps them unknown, "legacy_canal" reproduces the historical
	// canal fallback.
	TypingPolicy string `yaml:"typing_policy" validate:"omitempty,oneof=strict legacy_canal"`

	// UncontrolledSupplyFinding decides whether a field fed only by
	// paths without a gate or smart meter is a "warning" or an "error".
	UncontrolledSupplyFinding string `yaml:"uncontrolled_supply_finding" validate:"omitempty,oneof=warning error"`

	// LogLevel sets the minimum level for validation logging.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns the strict defaults.
func DefaultConfig() Config {
	return Config{
		TypingPolicy:              "strict",
		UncontrolledSupplyFinding: "warning",
		LogLevel:                  "info",
	}
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid validation config: %w", err)
	}
	return nil
}

// LoadConfig reads and validates a YAML config file. Fields absent from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// NetworkPolicy maps the configured typing policy onto the network's
// prefix-typing behavior.
func (c Config) NetworkPolicy() network.TypingPolicy {
	if c.TypingPolicy == "legacy_canal" {
		return network.LegacyCanalTyping
	}
	return network.StrictTyping
}

// UncontrolledSupplySeverity maps the configured finding treatment onto a
// severity.
func (c Config) UncontrolledSupplySeverity() Severity {
	if c.UncontrolledSupplyFinding == "error" {
		return Error
	}
	return Warning
}
