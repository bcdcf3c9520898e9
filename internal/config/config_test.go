package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PREPWISE_DB", "")
	t.Setenv("PREPWISE_ADDR", "")
	t.Setenv("PREPWISE_ENV", "")
	t.Setenv("PREPWISE_CORS_ORIGINS", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.IsProd() {
		t.Error("IsProd() = true for dev config")
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PREPWISE_DB", "/tmp/prepwise.db")
	t.Setenv("PREPWISE_ADDR", ":9090")
	t.Setenv("PREPWISE_ENV", "prod")
	t.Setenv("PREPWISE_CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := Load()
	if cfg.DBPath != "/tmp/prepwise.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if !cfg.IsProd() {
		t.Error("IsProd() = false for prod config")
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
	for i := range want {
		if cfg.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], want[i])
		}
	}
}
