package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Mode != "development" {
		t.Errorf("expected default mode development, got %s", cfg.Server.Mode)
	}
	if !cfg.Server.Debug {
		t.Error("expected debug to default to true")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.AI.BaseURL != "https://flatlogic.com" {
		t.Errorf("unexpected default AI base URL: %s", cfg.AI.BaseURL)
	}
	if cfg.AI.DefaultModel != "gpt-5-mini" {
		t.Errorf("unexpected default AI model: %s", cfg.AI.DefaultModel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UNICHAT_SERVER_PORT", "9001")
	t.Setenv("UNICHAT_DATABASE_DRIVER", "postgres")
	t.Setenv("UNICHAT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9001 {
		t.Errorf("expected port 9001, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestLoad_LegacyEnvAliases(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DEBUG", "false")
	t.Setenv("ALLOWED_HOSTS", "example.com,.example.org")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("PROJECT_DESCRIPTION", "a scaffold")
	t.Setenv("PROJECT_UUID", "11111111-2222-3333-4444-555555555555")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.SecretKey != "s3cret" {
		t.Errorf("SECRET_KEY alias not applied, got %q", cfg.Server.SecretKey)
	}
	if cfg.Server.Debug {
		t.Error("DEBUG=false alias not applied")
	}
	if len(cfg.Server.AllowedHosts) != 2 || cfg.Server.AllowedHosts[0] != "example.com" {
		t.Errorf("ALLOWED_HOSTS alias not applied, got %v", cfg.Server.AllowedHosts)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Errorf("DB_* aliases not applied, got %s:%d", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Project.Description != "a scaffold" {
		t.Errorf("PROJECT_DESCRIPTION alias not applied, got %q", cfg.Project.Description)
	}
	if cfg.AI.ProjectUUID != "11111111-2222-3333-4444-555555555555" {
		t.Errorf("PROJECT_UUID alias not applied, got %q", cfg.AI.ProjectUUID)
	}
}

func TestLoad_PrefixedEnvWinsOverLegacyAlias(t *testing.T) {
	t.Setenv("SECRET_KEY", "legacy-secret")
	t.Setenv("UNICHAT_SERVER_SECRET_KEY", "prefixed-secret")
	t.Setenv("DB_HOST", "legacy.internal")
	t.Setenv("UNICHAT_DATABASE_HOST", "prefixed.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.SecretKey != "prefixed-secret" {
		t.Errorf("expected prefixed secret key to win, got %q", cfg.Server.SecretKey)
	}
	if cfg.Database.Host != "prefixed.internal" {
		t.Errorf("expected prefixed database host to win, got %q", cfg.Database.Host)
	}
}

func TestLoad_ProductionRequiresSecretKey(t *testing.T) {
	t.Setenv("UNICHAT_SERVER_MODE", "production")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for production mode with default secret key")
	}
	if !strings.Contains(err.Error(), "secret key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ProductionWithSecretKey(t *testing.T) {
	t.Setenv("UNICHAT_SERVER_MODE", "production")
	t.Setenv("SECRET_KEY", "real-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("expected production mode, got %s", cfg.Server.Mode)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("UNICHAT_DATABASE_DRIVER", "oracle")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "unsupported database driver") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Mode: "staging", SecretKey: "x"},
		Database: DatabaseConfig{Driver: "sqlite"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown server mode")
	}
}

func TestResolveDSN_ExplicitDSNWins(t *testing.T) {
	d := DatabaseConfig{
		Driver: "postgres",
		DSN:    "host=explicit dbname=x",
		Host:   "ignored",
	}
	if got := d.ResolveDSN(); got != "host=explicit dbname=x" {
		t.Errorf("expected explicit DSN, got %q", got)
	}
}

func TestResolveDSN_AssemblesPostgres(t *testing.T) {
	d := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db.internal",
		Port:     5433,
		User:     "unichat",
		Password: "hunter2",
		Name:     "unichat",
	}

	got := d.ResolveDSN()
	for _, want := range []string{"host=db.internal", "port=5433", "user=unichat", "dbname=unichat", "password=hunter2", "sslmode=disable"} {
		if !strings.Contains(got, want) {
			t.Errorf("DSN %q missing %q", got, want)
		}
	}
}

func TestResolveDSN_OmitsEmptyPassword(t *testing.T) {
	d := DatabaseConfig{Driver: "postgres", Host: "localhost", Port: 5432, User: "u", Name: "n"}
	if got := d.ResolveDSN(); strings.Contains(got, "password=") {
		t.Errorf("DSN %q should not contain a password", got)
	}
}

func TestResolveDSN_SQLiteDefault(t *testing.T) {
	d := DatabaseConfig{Driver: "sqlite"}
	if got := d.ResolveDSN(); got != "./unichat.db" {
		t.Errorf("expected default sqlite path, got %q", got)
	}
}
