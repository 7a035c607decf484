package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.RateLimitPerMinute != 60 {
		t.Errorf("rate limit = %d, want 60", cfg.RateLimitPerMinute)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("unexpected timeouts: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("READ_TIMEOUT", "5s")

	cfg := Load()
	if cfg.Port != "9999" || cfg.LogLevel != "debug" ||
		cfg.RateLimitPerMinute != 120 || cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadIgnoresUnparseableEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	t.Setenv("READ_TIMEOUT", "never")

	cfg := Load()
	if cfg.RateLimitPerMinute != 60 || cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("unparseable env should fall back to defaults: %+v", cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"non-numeric port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level"},
		{"zero rate limit", func(c *Config) { c.RateLimitPerMinute = 0 }, "invalid rate limit"},
		{"huge rate limit", func(c *Config) { c.RateLimitPerMinute = 99999 }, "invalid rate limit"},
		{"tiny timeout", func(c *Config) { c.WriteTimeout = time.Millisecond }, "write timeout"},
	}

	for _, c := range cases {
		cfg := Load()
		c.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.wantMsg) {
			t.Errorf("%s: error %q missing %q", c.name, err, c.wantMsg)
		}
	}
}

func TestValidateCombinesErrors(t *testing.T) {
	cfg := Load()
	cfg.Port = "nope"
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "invalid log level") {
		t.Fatalf("expected both problems reported, got %q", err)
	}
}
