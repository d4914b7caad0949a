package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Checkout.Currency != "eur" {
		t.Errorf("Currency = %q, want eur", cfg.Checkout.Currency)
	}
	if cfg.Checkout.Origin == "" {
		t.Error("Origin must have a default")
	}
	if cfg.Static.Dir != "./public" {
		t.Errorf("Static.Dir = %q, want ./public", cfg.Static.Dir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("ORIGIN", "https://shop.example.com")
	t.Setenv("CURRENCY", "usd")
	t.Setenv("READ_TIMEOUT", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != "8081" || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Checkout.Origin != "https://shop.example.com" {
		t.Errorf("Origin = %q", cfg.Checkout.Origin)
	}
	if cfg.Checkout.Currency != "usd" {
		t.Errorf("Currency = %q", cfg.Checkout.Currency)
	}
	if cfg.Server.ReadTimeout != 5 {
		t.Errorf("ReadTimeout = %d, want 5", cfg.Server.ReadTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadMissingSecretKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing STRIPE_SECRET_KEY")
	}
	if !strings.Contains(err.Error(), "STRIPE_SECRET_KEY") {
		t.Errorf("error = %v, want mention of STRIPE_SECRET_KEY", err)
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid log level")
	}
}

func TestLoadMalformedIntFallsBack(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Server.ReadTimeout != 15 {
		t.Errorf("ReadTimeout = %d, want default 15", cfg.Server.ReadTimeout)
	}
}
