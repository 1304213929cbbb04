package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("B24_BASE_URL", "https://example.bitrix24.ru/")
	t.Setenv("B24_USER_ID", "101")
	t.Setenv("B24_WEBHOOK_SECRET", "s3cret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://example.bitrix24.ru" {
		t.Fatalf("trailing slash not stripped: %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if !cfg.TLSVerify {
		t.Fatalf("TLS verification must default to on")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("B24_BASE_URL", "")
	t.Setenv("B24_USER_ID", "")
	t.Setenv("B24_WEBHOOK_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without webhook coordinates")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("B24_TIMEOUT_SECONDS", "-5")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("B24_TIMEOUT_SECONDS", "5")
	t.Setenv("B24_TLS_VERIFY", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.Timeout)
	}
	if cfg.TLSVerify {
		t.Fatalf("expected TLS verification off")
	}
}
