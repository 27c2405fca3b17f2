package config

// Config is the top-level carechat configuration, corresponding to .carechat.yml.
type Config struct {
	Port               int         `yaml:"port" koanf:"port"`
	DataDir            string      `yaml:"data_dir" koanf:"data_dir"`
	AllowAllOrigins    bool        `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ReminderWebhookURL string      `yaml:"reminder_webhook_url" koanf:"reminder_webhook_url"`
	Abuse              AbuseConfig `yaml:"abuse" koanf:"abuse"`
}

// AbuseConfig tunes the chat abuse filter. Empty keyword lists mean "use the
// built-in lists"; the numeric thresholds always apply.
type AbuseConfig struct {
	SpamKeywords     []string `yaml:"spam_keywords" koanf:"spam_keywords"`
	AbuseKeywords    []string `yaml:"abuse_keywords" koanf:"abuse_keywords"`
	RepetitionLimit  int      `yaml:"repetition_limit" koanf:"repetition_limit"`
	MaxMessageLength int      `yaml:"max_message_length" koanf:"max_message_length"`
	AllCapsMinLength int      `yaml:"all_caps_min_length" koanf:"all_caps_min_length"`
}
