package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:    8087,
		DataDir: ".carechat",
		Abuse: AbuseConfig{
			RepetitionLimit:  3,
			MaxMessageLength: 500,
			AllCapsMinLength: 10,
		},
	}
}
