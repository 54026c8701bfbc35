package testutil

import (
	"strings"
	"testing"
)

func TestDefaultTestDBConfig(t *testing.T) {
	t.Run("defaults to local test database port 55432", func(t *testing.T) {
		for _, k := range []string{"TEST_DB_HOST", "TEST_DB_PORT", "TEST_DB_USER", "TEST_DB_PASSWORD", "TEST_DB_NAME"} {
			t.Setenv(k, "")
		}

		cfg := DefaultTestDBConfig()
		if cfg.Host != "localhost" {
			t.Errorf("expected Host=localhost, got %s", cfg.Host)
		}
		if cfg.Port != "55432" {
			t.Errorf("expected Port=55432, got %s", cfg.Port)
		}
		if cfg.DBName != "spendwise_web" {
			t.Errorf("expected DBName=spendwise_web, got %s", cfg.DBName)
		}
	})

	t.Run("respects TEST_DB_PORT environment variable", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "postgres")
		t.Setenv("TEST_DB_PORT", "5432")

		cfg := DefaultTestDBConfig()
		if cfg.Host != "postgres" || cfg.Port != "5432" {
			t.Errorf("expected postgres:5432, got %s:%s", cfg.Host, cfg.Port)
		}
		if !strings.Contains(cfg.DSN(), "@postgres:5432/") {
			t.Errorf("unexpected DSN %s", cfg.DSN())
		}
	})
}
