package configs

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Port == "" {
		t.Error("expected a default port")
	}
	if cfg.MongoDB == "" {
		t.Error("expected a default database name")
	}
	if cfg.JWTTTL <= 0 {
		t.Errorf("JWTTTL = %v, want positive", cfg.JWTTTL)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("JWT_SECRET", "from-env")

	cfg := LoadConfig()
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v, want 24h", cfg.JWTTTL)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg := LoadConfig()
	if cfg.JWTTTL != 168*time.Hour {
		t.Errorf("JWTTTL = %v, want 168h fallback", cfg.JWTTTL)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FOODIE_TEST_KEY", "set")
	if v := getEnv("FOODIE_TEST_KEY", "fallback"); v != "set" {
		t.Errorf("getEnv = %q, want set", v)
	}
	if v := getEnv("FOODIE_TEST_MISSING", "fallback"); v != "fallback" {
		t.Errorf("getEnv = %q, want fallback", v)
	}
}
