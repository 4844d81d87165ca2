package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr default")
	}
	if c.HTTP.ShutdownTimeout != 15*time.Second {
		t.Fatalf("HTTP.ShutdownTimeout default")
	}
	if c.Source.Kind != SourceFile || c.Source.ItemMasterPath != "data/item_master.json" {
		t.Fatalf("source defaults")
	}
	if c.Cache.Kind != CacheMemory || c.Cache.Size != 4 || c.Cache.TTL != 10*time.Minute {
		t.Fatalf("cache defaults")
	}
	if c.RateLimit.RPS != 5 || c.RateLimit.Burst != 10 {
		t.Fatalf("rate limit defaults")
	}
	if c.Log.Level != "info" {
		t.Fatalf("log level default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INVENTORY_HTTP_ADDR", ":9090")
	t.Setenv("INVENTORY_SOURCE_KIND", "http")
	t.Setenv("INVENTORY_SOURCE_BASE_URL", "http://static.local/data")
	t.Setenv("INVENTORY_SOURCE_TIMEOUT", "3s")
	t.Setenv("INVENTORY_CACHE_KIND", "redis")
	t.Setenv("INVENTORY_REDIS_ADDR", "cache:6379")
	t.Setenv("INVENTORY_RATE_LIMIT_BURST", "7")
	t.Setenv("INVENTORY_AUTH_JWT_SECRET", "s3cret")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTP.Addr != ":9090" {
		t.Fatalf("HTTP.Addr env")
	}
	if c.Source.Kind != SourceHTTP || c.Source.BaseURL != "http://static.local/data" {
		t.Fatalf("source env")
	}
	if c.Source.Timeout != 3*time.Second {
		t.Fatalf("source timeout env")
	}
	if c.Cache.Kind != CacheRedis || c.Redis.Addr != "cache:6379" {
		t.Fatalf("cache env")
	}
	if c.RateLimit.Burst != 7 {
		t.Fatalf("rate limit env")
	}
	if c.Auth.JWTSecret != "s3cret" {
		t.Fatalf("jwt secret env")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "source:\n  kind: postgres\ndatabase:\n  url: postgres://localhost/inventory\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Source.Kind != SourcePostgres || c.Database.URL != "postgres://localhost/inventory" {
		t.Fatalf("config file source")
	}
	if c.Log.Level != "debug" {
		t.Fatalf("config file log level")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("INVENTORY_SOURCE_KIND", "postgres")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for postgres without database url")
	}

	t.Setenv("INVENTORY_SOURCE_KIND", "ftp")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown source kind")
	}

	t.Setenv("INVENTORY_SOURCE_KIND", "file")
	t.Setenv("INVENTORY_CACHE_KIND", "disk")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown cache kind")
	}
}
