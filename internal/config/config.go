package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSecretKey is the placeholder secret shipped by the scaffold.
// Production mode refuses to start with it.
const DefaultSecretKey = "change-me-in-production"

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Project  ProjectConfig  `mapstructure:"project"`
	Static   StaticConfig   `mapstructure:"static"`
	AI       AIConfig       `mapstructure:"ai"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int      `mapstructure:"port"`
	Mode         string   `mapstructure:"mode"` // "development" or "production"
	Debug        bool     `mapstructure:"debug"`
	SecretKey    string   `mapstructure:"secret_key"`
	AllowedHosts []string `mapstructure:"allowed_hosts"` // empty = permissive only when debug is on outside production
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // "sqlite" or "postgres"
	DSN             string `mapstructure:"dsn"`    // Full connection string; wins over the discrete fields
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	Name            string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`    // Maximum idle connections (Postgres)
	MaxOpenConns    int    `mapstructure:"max_open_conns"`    // Maximum open connections (Postgres)
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // Connection max lifetime in minutes (Postgres)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Format string `mapstructure:"format"` // "json" or "text"
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
}

// ProjectConfig holds scaffold metadata surfaced on the landing endpoint
type ProjectConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	ImageURL    string `mapstructure:"image_url"`
}

// StaticConfig holds static asset collection configuration
type StaticConfig struct {
	SourceDirs []string `mapstructure:"source_dirs"` // directories scanned by collectstatic
	Root       string   `mapstructure:"root"`        // destination directory
	Ignore     []string `mapstructure:"ignore"`      // glob patterns skipped during collection
}

// AIConfig holds AI proxy client configuration
type AIConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	ResponsesPath string `mapstructure:"responses_path"` // derived from project_id when empty
	ProjectID     string `mapstructure:"project_id"`
	ProjectUUID   string `mapstructure:"project_uuid"`
	ProjectHeader string `mapstructure:"project_header"`
	DefaultModel  string `mapstructure:"default_model"`
	Timeout       int    `mapstructure:"timeout"` // seconds
	VerifyTLS     bool   `mapstructure:"verify_tls"`
}

// LoadDotenv populates the process environment from a root-level .env
// file if one exists. Variables already set in the environment win.
func LoadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for local development
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.debug", true)
	v.SetDefault("server.secret_key", DefaultSecretKey)
	v.SetDefault("server.allowed_hosts", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "unichat")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "unichat")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60) // 60 minutes
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("project.name", "UniChat")
	v.SetDefault("project.description", "")
	v.SetDefault("project.image_url", "")
	v.SetDefault("static.source_dirs", []string{"./static"})
	v.SetDefault("static.root", "./staticfiles")
	v.SetDefault("static.ignore", []string{})
	v.SetDefault("ai.base_url", "https://flatlogic.com")
	v.SetDefault("ai.responses_path", "")
	v.SetDefault("ai.project_id", "")
	v.SetDefault("ai.project_uuid", "")
	v.SetDefault("ai.project_header", "project-uuid")
	v.SetDefault("ai.default_model", "gpt-5-mini")
	v.SetDefault("ai.timeout", 30)
	v.SetDefault("ai.verify_tls", true)

	// Read from config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/unichat/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, using defaults
	}

	// Environment variables override
	v.SetEnvPrefix("UNICHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The generator writes an unprefixed .env; honor those names too.
	applyLegacyEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyLegacyEnv maps the generator's unprefixed variable names onto
// viper keys so a stock .env works without renaming anything. An
// explicit UNICHAT_-prefixed variable always wins over its alias.
func applyLegacyEnv(v *viper.Viper) {
	aliases := map[string]string{
		"server.secret_key":    "SECRET_KEY",
		"server.debug":         "DEBUG",
		"server.allowed_hosts": "ALLOWED_HOSTS",
		"database.host":        "DB_HOST",
		"database.port":        "DB_PORT",
		"database.user":        "DB_USER",
		"database.password":    "DB_PASSWORD",
		"database.name":        "DB_NAME",
		"project.description":  "PROJECT_DESCRIPTION",
		"project.image_url":    "PROJECT_IMAGE_URL",
		"ai.base_url":          "AI_PROXY_BASE_URL",
		"ai.responses_path":    "AI_RESPONSES_PATH",
		"ai.project_id":        "PROJECT_ID",
		"ai.project_uuid":      "PROJECT_UUID",
		"ai.project_header":    "AI_PROJECT_HEADER",
		"ai.default_model":     "AI_DEFAULT_MODEL",
		"ai.timeout":           "AI_TIMEOUT",
		"ai.verify_tls":        "AI_VERIFY_TLS",
	}
	for key, env := range aliases {
		prefixed := "UNICHAT_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := os.LookupEnv(prefixed); ok && val != "" {
			continue
		}
		if val, ok := os.LookupEnv(env); ok && val != "" {
			if key == "server.allowed_hosts" {
				v.Set(key, strings.Split(val, ","))
				continue
			}
			v.Set(key, val)
		}
	}
}

// Validate checks configuration invariants that should abort startup.
func (c *Config) Validate() error {
	if c.Server.Mode != "development" && c.Server.Mode != "production" {
		return fmt.Errorf("invalid server mode %q: valid modes are development, production", c.Server.Mode)
	}
	if c.Server.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.Server.Mode == "production" && c.Server.SecretKey == DefaultSecretKey {
		return fmt.Errorf("secret key must be set in production mode")
	}
	switch c.Database.Driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return fmt.Errorf("unsupported database driver: %s (supported: sqlite, postgres)", c.Database.Driver)
	}
	return nil
}

// ResolveDSN returns the connection string for the configured driver.
// An explicit DSN wins; otherwise one is assembled from the discrete
// host/port/user/password/name fields.
func (d DatabaseConfig) ResolveDSN() string {
	if d.DSN != "" {
		return d.DSN
	}

	switch d.Driver {
	case "sqlite":
		return "./unichat.db"
	case "postgres", "postgresql":
		parts := []string{
			fmt.Sprintf("host=%s", d.Host),
			fmt.Sprintf("port=%d", d.Port),
			fmt.Sprintf("user=%s", d.User),
			fmt.Sprintf("dbname=%s", d.Name),
		}
		if d.Password != "" {
			parts = append(parts, fmt.Sprintf("password=%s", d.Password))
		}
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		parts = append(parts, fmt.Sprintf("sslmode=%s", sslMode))
		return strings.Join(parts, " ")
	}
	return ""
}
