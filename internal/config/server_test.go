package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/arcade_test")
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("load server config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.PriceSource != "static" {
		t.Fatalf("expected static price source default, got %q", cfg.PriceSource)
	}
	if cfg.SessionRewardExpiryDays != 30 || cfg.PurchaseRewardExpiryDays != 365 {
		t.Fatalf("unexpected expiry defaults: %d/%d", cfg.SessionRewardExpiryDays, cfg.PurchaseRewardExpiryDays)
	}
}

func TestLoadServerRequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	if _, err := LoadServer(); err == nil {
		t.Fatal("expected error when POSTGRES_DSN is empty")
	}
}
