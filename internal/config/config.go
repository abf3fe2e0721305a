package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Auth     AuthConfig     `koanf:"auth"`
	Registry RegistryConfig `koanf:"registry"`
	Jobs     JobsConfig     `koanf:"jobs"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string     `koanf:"host"`
	Port    int        `koanf:"port"`
	Mode    string     `koanf:"mode"`
	Timeout string     `koanf:"timeout"`
	CORS    CORSConfig `koanf:"cors"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowOrigins     []string `koanf:"allow_origins"`
	AllowMethods     []string `koanf:"allow_methods"`
	AllowHeaders     []string `koanf:"allow_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           string   `koanf:"max_age"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver   string         `koanf:"driver"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	Pool     PoolConfig     `koanf:"pool"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// PostgresConfig holds PostgreSQL-specific settings.
type PostgresConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"dbname"`
	SSLMode  string `koanf:"sslmode"`
}

// PoolConfig holds database connection pool settings.
type PoolConfig struct {
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	ConnMaxLifetime string `koanf:"conn_max_lifetime"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level           string `koanf:"level"`
	Format          string `koanf:"format"`
	Color           *bool  `koanf:"color"`
	FilePath        string `koanf:"file_path"`
	MaxSizeMB       int    `koanf:"max_size_mb"`
	RetentionDays   int    `koanf:"retention_days"`
	MaxBackups      int    `koanf:"max_backups"`
	CompressRotated *bool  `koanf:"compress_rotated"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	Enabled     bool     `koanf:"enabled"`
	JWTSecret   string   `koanf:"jwt_secret"`
	TokenExpiry string   `koanf:"token_expiry"`
	PublicPaths []string `koanf:"public_paths"`
}

// RegistryConfig holds upstream warranty-registry settings.
type RegistryConfig struct {
	Enabled   bool   `koanf:"enabled"`
	BaseURL   string `koanf:"base_url"`
	Timeout   string `koanf:"timeout"`
	CacheSize int    `koanf:"cache_size"`
}

// JobsConfig holds background job settings.
type JobsConfig struct {
	ExpiryScan ExpiryScanConfig `koanf:"expiry_scan"`
}

// ExpiryScanConfig holds the warranty expiry scan job settings.
type ExpiryScanConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Schedule string `koanf:"schedule"`
}

// Load reads configuration from a YAML file and overlays environment variables.
// Environment variables use the prefix "APP__" and double-underscore as the
// hierarchy separator. Single underscores are preserved as part of the key name.
// For example, APP__SERVER__PORT=9090 overrides server.port and
// APP__REGISTRY__BASE_URL overrides registry.base_url.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// APP__SERVER__PORT -> server.port
	// APP__DATABASE__POOL__MAX_IDLE_CONNS -> database.pool.max_idle_conns
	if err := k.Load(env.Provider("APP__", ".", func(s string) string {
		key := strings.TrimPrefix(s, "APP__")
		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "__", ".")
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints and supported values.
func (c *Config) Validate() error {
	mode := strings.TrimSpace(c.Server.Mode)
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		c.Server.Mode = mode
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	host := strings.TrimSpace(c.Server.Host)
	if host == "" {
		return fmt.Errorf("server.host is required")
	}
	c.Server.Host = host

	switch c.Database.Driver {
	case "sqlite", "postgres":
		// ok
	default:
		return fmt.Errorf("invalid database.driver %q: must be one of %q, %q", c.Database.Driver, "sqlite", "postgres")
	}

	if c.Database.Driver == "sqlite" {
		sqlitePath := strings.TrimSpace(c.Database.SQLite.Path)
		if sqlitePath == "" {
			return fmt.Errorf("database.sqlite.path is required when driver is sqlite")
		}
		c.Database.SQLite.Path = sqlitePath
	}

	if c.Database.Driver == "postgres" {
		pgHost := strings.TrimSpace(c.Database.Postgres.Host)
		if pgHost == "" {
			return fmt.Errorf("database.postgres.host is required when driver is postgres")
		}
		if c.Database.Postgres.Port < 1 || c.Database.Postgres.Port > 65535 {
			return fmt.Errorf("invalid database.postgres.port %d: must be between 1 and 65535", c.Database.Postgres.Port)
		}
		user := strings.TrimSpace(c.Database.Postgres.User)
		if user == "" {
			return fmt.Errorf("database.postgres.user is required when driver is postgres")
		}
		dbName := strings.TrimSpace(c.Database.Postgres.DBName)
		if dbName == "" {
			return fmt.Errorf("database.postgres.dbname is required when driver is postgres")
		}
		sslMode := strings.TrimSpace(c.Database.Postgres.SSLMode)
		switch sslMode {
		case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
			// ok
		default:
			return fmt.Errorf("invalid database.postgres.sslmode %q", c.Database.Postgres.SSLMode)
		}
		if c.Server.Mode == gin.ReleaseMode {
			switch sslMode {
			case "require", "verify-ca", "verify-full":
				// ok
			default:
				return fmt.Errorf("invalid database.postgres.sslmode %q for server.mode %q: must be one of %q, %q, %q", c.Database.Postgres.SSLMode, gin.ReleaseMode, "require", "verify-ca", "verify-full")
			}
		}

		c.Database.Postgres.Host = pgHost
		c.Database.Postgres.User = user
		c.Database.Postgres.DBName = dbName
		c.Database.Postgres.SSLMode = sslMode
	}

	// Normalize optional duration fields: whitespace-only means unset.
	c.Server.Timeout = strings.TrimSpace(c.Server.Timeout)
	c.Server.CORS.MaxAge = strings.TrimSpace(c.Server.CORS.MaxAge)
	c.Database.Pool.ConnMaxLifetime = strings.TrimSpace(c.Database.Pool.ConnMaxLifetime)
	c.Registry.Timeout = strings.TrimSpace(c.Registry.Timeout)

	if err := validateOptionalDuration("server.timeout", c.Server.Timeout); err != nil {
		return err
	}
	if err := validateOptionalDuration("server.cors.max_age", c.Server.CORS.MaxAge); err != nil {
		return err
	}
	if err := validateOptionalDuration("database.pool.conn_max_lifetime", c.Database.Pool.ConnMaxLifetime); err != nil {
		return err
	}

	if c.Auth.Enabled {
		jwtSecret := strings.TrimSpace(c.Auth.JWTSecret)
		if jwtSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required when auth is enabled")
		}
		if len(jwtSecret) < 32 {
			return fmt.Errorf("invalid auth.jwt_secret: must be at least 32 characters")
		}
		c.Auth.JWTSecret = jwtSecret

		tokenExpiry := strings.TrimSpace(c.Auth.TokenExpiry)
		if tokenExpiry == "" {
			tokenExpiry = "24h"
		}
		d, err := time.ParseDuration(tokenExpiry)
		if err != nil {
			return fmt.Errorf("invalid auth.token_expiry %q: %w", c.Auth.TokenExpiry, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid auth.token_expiry %q: must be greater than 0", c.Auth.TokenExpiry)
		}
		c.Auth.TokenExpiry = tokenExpiry
	}

	if c.Registry.Enabled {
		baseURL := strings.TrimSpace(c.Registry.BaseURL)
		if baseURL == "" {
			return fmt.Errorf("registry.base_url is required when the registry proxy is enabled")
		}
		c.Registry.BaseURL = baseURL
		if err := validateOptionalDuration("registry.timeout", c.Registry.Timeout); err != nil {
			return err
		}
		if c.Registry.CacheSize < 0 {
			return fmt.Errorf("invalid registry.cache_size %d: must not be negative", c.Registry.CacheSize)
		}
	}

	if c.Jobs.ExpiryScan.Enabled {
		schedule := strings.TrimSpace(c.Jobs.ExpiryScan.Schedule)
		if schedule == "" {
			return fmt.Errorf("jobs.expiry_scan.schedule is required when the expiry scan is enabled")
		}
		if _, err := cron.ParseStandard(schedule); err != nil {
			return fmt.Errorf("invalid jobs.expiry_scan.schedule %q: %w", schedule, err)
		}
		c.Jobs.ExpiryScan.Schedule = schedule
	}

	return nil
}

// TokenExpiryDuration returns auth.token_expiry as a duration. Validate
// guarantees it parses; the fallback covers unvalidated zero configs.
func (c *Config) TokenExpiryDuration() time.Duration {
	d, err := time.ParseDuration(c.Auth.TokenExpiry)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// RegistryTimeoutDuration returns registry.timeout as a duration, zero when unset.
func (c *Config) RegistryTimeoutDuration() time.Duration {
	if c.Registry.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Registry.Timeout)
	if err != nil {
		return 0
	}
	return d
}

func validateOptionalDuration(name, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid %s %q: must be greater than 0", name, value)
	}
	return nil
}
