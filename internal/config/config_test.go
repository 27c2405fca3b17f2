package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8087 {
		t.Errorf("expected default port 8087, got %d", cfg.Port)
	}
	if cfg.DataDir != ".carechat" {
		t.Errorf("expected default data_dir %q, got %q", ".carechat", cfg.DataDir)
	}
	if cfg.Abuse.RepetitionLimit != 3 {
		t.Errorf("expected default repetition_limit 3, got %d", cfg.Abuse.RepetitionLimit)
	}
	if cfg.Abuse.MaxMessageLength != 500 {
		t.Errorf("expected default max_message_length 500, got %d", cfg.Abuse.MaxMessageLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.carechat.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.DataDir = "data"
	original.ReminderWebhookURL = "https://hooks.example.com/care"
	original.Abuse.SpamKeywords = []string{"buy now", "click here"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DataDir != original.DataDir {
		t.Errorf("data_dir: got %q, want %q", loaded.DataDir, original.DataDir)
	}
	if loaded.ReminderWebhookURL != original.ReminderWebhookURL {
		t.Errorf("reminder_webhook_url: got %q, want %q", loaded.ReminderWebhookURL, original.ReminderWebhookURL)
	}
	if len(loaded.Abuse.SpamKeywords) != 2 {
		t.Errorf("spam_keywords: got %v", loaded.Abuse.SpamKeywords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 8087 {
		t.Errorf("expected defaults for missing file, got port %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.carechat.yml")

	os.Setenv("CARECHAT_PORT", "7070")
	defer os.Unsetenv("CARECHAT_PORT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("expected env override port 7070, got %d", cfg.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"huge port", func(c *Config) { c.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"zero repetition limit", func(c *Config) { c.Abuse.RepetitionLimit = 0 }},
		{"zero max length", func(c *Config) { c.Abuse.MaxMessageLength = 0 }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestRouterAbuseConfigFallsBackToBuiltins(t *testing.T) {
	cfg := DefaultConfig()

	ac := cfg.RouterAbuseConfig()
	if len(ac.SpamKeywords) == 0 {
		t.Error("expected built-in spam keywords")
	}
	if len(ac.AbuseKeywords) == 0 {
		t.Error("expected built-in abuse keywords")
	}
	if ac.RepetitionLimit != 3 || ac.MaxMessageLength != 500 || ac.AllCapsMinLength != 10 {
		t.Errorf("thresholds not carried over: %+v", ac)
	}

	cfg.Abuse.SpamKeywords = []string{"custom spam"}
	ac = cfg.RouterAbuseConfig()
	if len(ac.SpamKeywords) != 1 || ac.SpamKeywords[0] != "custom spam" {
		t.Errorf("expected configured spam keywords, got %v", ac.SpamKeywords)
	}
}
