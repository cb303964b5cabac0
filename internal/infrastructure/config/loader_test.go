package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Assistant.Enabled {
		t.Error("expected assistant enabled by default")
	}
	if cfg.Assistant.Command != "claude" {
		t.Errorf("assistant command = %q, want claude", cfg.Assistant.Command)
	}
	if cfg.Execution.TimeoutSeconds != 30 {
		t.Errorf("execution timeout = %d, want 30", cfg.Execution.TimeoutSeconds)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestLoadClampsAssistantBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "assistant:\n  timeout: 900\n  max_retries: 50\n  cache_ttl: 72h\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Assistant.TimeoutSeconds != 120 {
		t.Errorf("timeout = %d, want clamp to 120", cfg.Assistant.TimeoutSeconds)
	}
	if cfg.Assistant.MaxRetries != 10 {
		t.Errorf("max retries = %d, want clamp to 10", cfg.Assistant.MaxRetries)
	}
	if got := CacheTTL(cfg.Assistant); got != 24*time.Hour {
		t.Errorf("cache ttl = %v, want clamp to 24h", got)
	}
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Assistant.Command != "claude" {
		t.Errorf("fallback command = %q, want claude", cfg.Assistant.Command)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("assistant:\n  enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewFileLoader(path)
	cfg, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !cfg.Assistant.Enabled {
		t.Error("reset config should re-enable assistant")
	}
}

func TestCacheTTLBadValue(t *testing.T) {
	cfg, err := NewFileLoader(filepath.Join(t.TempDir(), "config.yaml")).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Assistant.CacheTTL = "nonsense"
	if got := CacheTTL(cfg.Assistant); got != time.Hour {
		t.Errorf("bad ttl = %v, want default 1h", got)
	}
}
