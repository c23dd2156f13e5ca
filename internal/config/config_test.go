package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	os.Args = os.Args[:1]
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URI", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "BODY_LIMIT_KB", "BASE_URL", "ENABLE_HTTPS", "TOKEN_FILE"} {
		t.Setenv(k, "") // восстановит прежнее значение после теста
		_ = os.Unsetenv(k)
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.DatabaseDSN != defaultDatabaseDSN {
		t.Fatalf("DatabaseDSN default expected %q, got %q", defaultDatabaseDSN, cfg.DatabaseDSN)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default expected 10s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes() != 1024*1024 {
		t.Fatalf("MaxBodyBytes default expected 1MiB, got %d", cfg.MaxBodyBytes())
	}
	if cfg.TokenFile == "" {
		t.Fatalf("TokenFile default must be non-empty")
	}
	if cfg.Production() {
		t.Fatalf("development logger expected by default")
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("DATABASE_URI", "postgres://u:p@db:5432/diarium")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("BODY_LIMIT_KB", "16")
	t.Setenv("LOG_LEVEL", "production")
	t.Setenv("TOKEN_FILE", "/tmp/diarium.token")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.DatabaseDSN != "postgres://u:p@db:5432/diarium" {
		t.Fatalf("DatabaseDSN expected from env, got %q", cfg.DatabaseDSN)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout expected 3s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes() != 16*1024 {
		t.Fatalf("MaxBodyBytes expected 16KiB, got %d", cfg.MaxBodyBytes())
	}
	if !cfg.Production() {
		t.Fatalf("LOG_LEVEL=production must select JSON logger")
	}
	if cfg.TokenFile != "/tmp/diarium.token" {
		t.Fatalf("TokenFile expected from env, got %q", cfg.TokenFile)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}
