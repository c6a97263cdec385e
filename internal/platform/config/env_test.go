package config

import "testing"

type testConfig struct {
	DBPath      string `env:"TEST_DB_PATH" envDefault:"crewdeck.db"`
	SessionName string `env:"TEST_SESSION_NAME"`
	OTELEnabled bool   `env:"TEST_OTEL_ENABLED" envDefault:"false"`
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TEST_SESSION_NAME", "Nostromo")
	t.Setenv("TEST_OTEL_ENABLED", "true")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error: %v", err)
	}
	if cfg.SessionName != "Nostromo" {
		t.Errorf("SessionName = %q", cfg.SessionName)
	}
	if !cfg.OTELEnabled {
		t.Error("OTELEnabled should be true")
	}
	if cfg.DBPath != "crewdeck.db" {
		t.Errorf("DBPath default = %q", cfg.DBPath)
	}
}

func TestParseEnvInvalidValue(t *testing.T) {
	t.Setenv("TEST_OTEL_ENABLED", "not-a-bool")

	var cfg testConfig
	if err := ParseEnv(&cfg); err == nil {
		t.Error("ParseEnv() should reject a malformed bool")
	}
}
