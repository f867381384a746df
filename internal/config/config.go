package config

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Auth     AuthConfig     `koanf:"auth"`
	Assets   AssetsConfig   `koanf:"assets"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host      string          `koanf:"host"`
	Port      int             `koanf:"port"`
	Mode      string          `koanf:"mode"`
	Timeout   string          `koanf:"timeout"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// CORSConfig holds CORS middleware settings.
type CORSConfig struct {
	AllowOrigins     []string `koanf:"allow_origins"`
	AllowMethods     []string `koanf:"allow_methods"`
	AllowHeaders     []string `koanf:"allow_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           string   `koanf:"max_age"`
}

// RateLimitConfig holds per-client rate limiting settings for the
// authentication endpoints.
type RateLimitConfig struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
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

// AuthConfig holds authentication settings, including the two-factor
// login flow.
type AuthConfig struct {
	JWTSecret       string `koanf:"jwt_secret"`
	TokenExpiry     string `koanf:"token_expiry"`
	TempTokenExpiry string `koanf:"temp_token_expiry"`
	OTPTTL          string `koanf:"otp_ttl"`
}

// AssetsConfig holds the public base URL used to build absolute image
// URLs for products, brands, banners, and blog covers.
type AssetsConfig struct {
	BaseURL string `koanf:"base_url"`
}

// Load reads configuration from a YAML file and overlays environment variables.
// Environment variables use the prefix "APP__" and double-underscore as the
// hierarchy separator. Single underscores are preserved as part of the key name.
// For example, APP__SERVER__PORT=9090 overrides server.port and
// APP__AUTH__JWT_SECRET overrides auth.jwt_secret.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Load YAML config file.
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Overlay environment variables with prefix APP__.
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
	// Validate server.mode.
	mode := strings.TrimSpace(c.Server.Mode)
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		c.Server.Mode = mode
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", c.Server.Mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}

	// Validate server.port range.
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	// Validate server.host.
	host := strings.TrimSpace(c.Server.Host)
	if host == "" {
		return fmt.Errorf("server.host is required")
	}
	c.Server.Host = host

	// Validate database.driver.
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

	// When driver is postgres, required connection fields must be valid.
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
			return fmt.Errorf("invalid database.postgres.sslmode %q: must be one of %q, %q, %q, %q, %q, %q", c.Database.Postgres.SSLMode, "disable", "allow", "prefer", "require", "verify-ca", "verify-full")
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

	// Validate optional duration fields.
	optionalDurations := []struct {
		name  string
		value string
	}{
		{"server.timeout", c.Server.Timeout},
		{"server.cors.max_age", c.Server.CORS.MaxAge},
		{"database.pool.conn_max_lifetime", c.Database.Pool.ConnMaxLifetime},
	}
	for _, f := range optionalDurations {
		if f.value == "" {
			continue
		}
		d, err := time.ParseDuration(f.value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", f.name, f.value, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid %s %q: must be greater than 0", f.name, f.value)
		}
	}

	// Validate server.rate_limit.
	if c.Server.RateLimit.Enabled {
		if c.Server.RateLimit.RPS <= 0 {
			return fmt.Errorf("invalid server.rate_limit.rps %v: must be positive when rate limiting is enabled", c.Server.RateLimit.RPS)
		}
		if c.Server.RateLimit.Burst <= 0 {
			return fmt.Errorf("invalid server.rate_limit.burst %d: must be positive when rate limiting is enabled", c.Server.RateLimit.Burst)
		}
	}

	// Validate auth config. Every endpoint except the login flow is
	// token-authenticated, so the JWT settings are always required.
	jwtSecret := strings.TrimSpace(c.Auth.JWTSecret)
	if jwtSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if len(jwtSecret) < 32 {
		return fmt.Errorf("invalid auth.jwt_secret: must be at least 32 characters")
	}
	if c.Server.Mode == gin.ReleaseMode && countSecretClasses(jwtSecret) < 3 {
		return fmt.Errorf("auth.jwt_secret must include at least 3 character classes (lowercase, uppercase, digit, symbol) in release mode")
	}
	c.Auth.JWTSecret = jwtSecret

	authDurations := []struct {
		name  string
		value *string
		def   string
	}{
		{"auth.token_expiry", &c.Auth.TokenExpiry, "24h"},
		{"auth.temp_token_expiry", &c.Auth.TempTokenExpiry, "10m"},
		{"auth.otp_ttl", &c.Auth.OTPTTL, "10m"},
	}
	for _, f := range authDurations {
		v := strings.TrimSpace(*f.value)
		if v == "" {
			v = f.def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", f.name, *f.value, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid %s %q: must be greater than 0", f.name, *f.value)
		}
		*f.value = v
	}

	// Normalize the assets base URL: no trailing slash.
	c.Assets.BaseURL = strings.TrimRight(strings.TrimSpace(c.Assets.BaseURL), "/")

	// Validate log.level.
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch level {
	case "debug", "info", "warn", "error":
		c.Log.Level = level
	default:
		return fmt.Errorf("invalid log.level %q: must be one of %q, %q, %q, %q", c.Log.Level, "debug", "info", "warn", "error")
	}

	// Validate log.format.
	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch format {
	case "text", "json":
		c.Log.Format = format
	default:
		return fmt.Errorf("invalid log.format %q: must be one of %q, %q", c.Log.Format, "text", "json")
	}

	return nil
}

// TokenExpiry returns the parsed auth.token_expiry duration.
func (c *Config) TokenExpiry() time.Duration {
	d, _ := time.ParseDuration(c.Auth.TokenExpiry)
	return d
}

// TempTokenExpiry returns the parsed auth.temp_token_expiry duration.
func (c *Config) TempTokenExpiry() time.Duration {
	d, _ := time.ParseDuration(c.Auth.TempTokenExpiry)
	return d
}

// OTPTTL returns the parsed auth.otp_ttl duration.
func (c *Config) OTPTTL() time.Duration {
	d, _ := time.ParseDuration(c.Auth.OTPTTL)
	return d
}

func countSecretClasses(secret string) int {
	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSymbol := false

	for _, r := range secret {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	classes := 0
	if hasLower {
		classes++
	}
	if hasUpper {
		classes++
	}
	if hasDigit {
		classes++
	}
	if hasSymbol {
		classes++
	}

	return classes
}
