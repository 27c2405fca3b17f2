package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/adebayo-ak/carechat/internal/router"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CARECHAT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: CARECHAT_PORT -> port, etc.
	if err := k.Load(env.Provider("CARECHAT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CARECHAT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Abuse.RepetitionLimit < 1 {
		return fmt.Errorf("abuse.repetition_limit must be at least 1")
	}
	if c.Abuse.MaxMessageLength < 1 {
		return fmt.Errorf("abuse.max_message_length must be at least 1")
	}
	if c.Abuse.AllCapsMinLength < 1 {
		return fmt.Errorf("abuse.all_caps_min_length must be at least 1")
	}
	return nil
}

// RouterAbuseConfig translates the configured abuse settings into the form
// the intent router consumes. Empty keyword lists fall back to the built-ins.
func (c *Config) RouterAbuseConfig() router.AbuseConfig {
	ac := router.DefaultAbuseConfig()
	if len(c.Abuse.SpamKeywords) > 0 {
		ac.SpamKeywords = c.Abuse.SpamKeywords
	}
	if len(c.Abuse.AbuseKeywords) > 0 {
		ac.AbuseKeywords = c.Abuse.AbuseKeywords
	}
	ac.RepetitionLimit = c.Abuse.RepetitionLimit
	ac.MaxMessageLength = c.Abuse.MaxMessageLength
	ac.AllCapsMinLength = c.Abuse.AllCapsMinLength
	return ac
}
