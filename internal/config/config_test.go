package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	cfg, err := load(v)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected default port: %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected default driver: %s", cfg.Database.Driver)
	}
	if cfg.JWT.ExpireHours != 24 {
		t.Fatalf("unexpected jwt expire hours: %d", cfg.JWT.ExpireHours)
	}
	if cfg.Security.PasswordPolicy.MinLength != 8 {
		t.Fatalf("unexpected password min length: %d", cfg.Security.PasswordPolicy.MinLength)
	}
	if cfg.Queue.Queues["critical"] != 5 {
		t.Fatalf("unexpected queue weights: %+v", cfg.Queue.Queues)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: \"9001\"\n  mode: release\ndatabase:\n  driver: postgres\n  dsn: host=db\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), content, 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("DATABASE_DSN", "host=override")

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	cfg, err := load(v)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}
	if cfg.Server.Port != "9001" || !cfg.Server.IsRelease() {
		t.Fatalf("file values not applied: %+v", cfg.Server)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("unexpected driver: %s", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "host=override" {
		t.Fatalf("env override not applied: %s", cfg.Database.DSN)
	}
}

func TestIsWeakSecret(t *testing.T) {
	if !IsWeakSecret("change-me-in-production") {
		t.Fatalf("default secret should be weak")
	}
	if !IsWeakSecret("short") {
		t.Fatalf("short secret should be weak")
	}
	if IsWeakSecret("f3c1b9a7e5d24c0b8a6f1e2d3c4b5a69") {
		t.Fatalf("random 32 byte secret should not be weak")
	}
}
