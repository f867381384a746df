package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"
  token_expiry: "12h"
  temp_token_expiry: "5m"
  otp_ttl: "3m"
assets:
  base_url: "https://cdn.example.com/media/"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.SQLite.Path != "data/test.db" {
		t.Errorf("SQLite.Path = %q, want %q", cfg.Database.SQLite.Path, "data/test.db")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.Port != 5433 {
		t.Errorf("Postgres.Port = %d, want %d", cfg.Database.Postgres.Port, 5433)
	}
	if cfg.Database.Postgres.User != "admin" {
		t.Errorf("Postgres.User = %q, want %q", cfg.Database.Postgres.User, "admin")
	}
	if cfg.Database.Postgres.Password != "secret" {
		t.Errorf("Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret")
	}
	if cfg.Database.Postgres.DBName != "testdb" {
		t.Errorf("Postgres.DBName = %q, want %q", cfg.Database.Postgres.DBName, "testdb")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}

	// Pool
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}
	if cfg.Database.Pool.MaxOpenConns != 50 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 50)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "30m" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "30m")
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}

	// Auth
	if cfg.Auth.TokenExpiry != "12h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "12h")
	}
	if cfg.Auth.TempTokenExpiry != "5m" {
		t.Errorf("Auth.TempTokenExpiry = %q, want %q", cfg.Auth.TempTokenExpiry, "5m")
	}
	if cfg.Auth.OTPTTL != "3m" {
		t.Errorf("Auth.OTPTTL = %q, want %q", cfg.Auth.OTPTTL, "3m")
	}

	// Assets: trailing slash is stripped.
	if cfg.Assets.BaseURL != "https://cdn.example.com/media" {
		t.Errorf("Assets.BaseURL = %q, want %q", cfg.Assets.BaseURL, "https://cdn.example.com/media")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__DATABASE__DRIVER", "sqlite")
	t.Setenv("APP__LOG__LEVEL", "error")

	// PoolConfig fields contain underscores — verify single _ is preserved.
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "20")
	t.Setenv("APP__DATABASE__POOL__MAX_OPEN_CONNS", "200")
	t.Setenv("APP__DATABASE__POOL__CONN_MAX_LIFETIME", "2h")

	t.Setenv("APP__AUTH__JWT_SECRET", "Zyxw9876!Zyxw9876!Zyxw9876!Zyxw9876!")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d (env override)", cfg.Server.Port, 9090)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q (env override)", cfg.Database.Driver, "sqlite")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q (env override)", cfg.Log.Level, "error")
	}

	// PoolConfig env overrides.
	if cfg.Database.Pool.MaxIdleConns != 20 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d (env override)", cfg.Database.Pool.MaxIdleConns, 20)
	}
	if cfg.Database.Pool.MaxOpenConns != 200 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d (env override)", cfg.Database.Pool.MaxOpenConns, 200)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "2h" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q (env override)", cfg.Database.Pool.ConnMaxLifetime, "2h")
	}

	if cfg.Auth.JWTSecret != "Zyxw9876!Zyxw9876!Zyxw9876!Zyxw9876!" {
		t.Errorf("Auth.JWTSecret = %q, want env override value", cfg.Auth.JWTSecret)
	}

	// Non-overridden values should remain from YAML.
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q (unchanged)", cfg.Server.Host, "127.0.0.1")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

// validBaseYAML returns a minimal valid YAML config string (sqlite, debug mode).
func validBaseYAML(extras string) string {
	return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/test.db"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "abcdefghijklmnopqrstuvwxyz123456"
  token_expiry: "24h"
` + extras
}

// validReleaseBaseYAML returns a minimal valid YAML config string (sqlite, release mode).
func validReleaseBaseYAML(extras string) string {
	return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "sqlite"
  sqlite:
    path: "data/test.db"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"
  token_expiry: "24h"
` + extras
}

func TestLoad_InvalidServerMode(t *testing.T) {
	path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `mode: "debug"`, `mode: "invalid"`, 1))

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid server mode, got nil")
	}
	if !strings.Contains(err.Error(), "server.mode") {
		t.Fatalf("Load() error = %v, want contains %q", err, "server.mode")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeTestConfig(t, strings.Replace(validBaseYAML(""), "port: 3000", "port: 0", 1))
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for port 0, got nil")
	}

	path = writeTestConfig(t, strings.Replace(validBaseYAML(""), "port: 3000", "port: 70000", 1))
	_, err = Load(path)
	if err == nil {
		t.Fatal("Load() expected error for port 70000, got nil")
	}
}

func TestLoad_InvalidServerHost(t *testing.T) {
	for _, host := range []string{`host: ""`, `host: "   "`} {
		path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `host: "127.0.0.1"`, host, 1))

		_, err := Load(path)
		if err == nil {
			t.Fatalf("Load() expected error for %s, got nil", host)
		}
		if !strings.Contains(err.Error(), "server.host") {
			t.Fatalf("Load() error = %v, want contains %q", err, "server.host")
		}
	}
}

func TestLoad_InvalidDatabaseDriver(t *testing.T) {
	path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `driver: "sqlite"`, `driver: "mysql"`, 1))
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for unsupported driver 'mysql', got nil")
	}
}

// validPostgresYAML returns a valid postgres config with the given field replaced.
func validPostgresYAML(old, new string) string {
	base := `server:
  host: "127.0.0.1"
  port: 3000
  mode: "debug"
database:
  driver: "postgres"
  postgres:
    host: "localhost"
    port: 5432
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "disable"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "abcdefghijklmnopqrstuvwxyz123456"
  token_expiry: "24h"
`
	if old == "" {
		return base
	}
	return strings.Replace(base, old, new, 1)
}

func TestLoad_PostgresMissingFields(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"empty host", `host: "localhost"`, `host: ""`},
		{"empty user", `user: "admin"`, `user: ""`},
		{"empty dbname", `dbname: "testdb"`, `dbname: ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, validPostgresYAML(tt.old, tt.new))
			if _, err := Load(path); err == nil {
				t.Fatal("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_SQLiteMissingPath(t *testing.T) {
	path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `path: "data/test.db"`, `path: ""`, 1))

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for empty sqlite path, got nil")
	}
	if !strings.Contains(err.Error(), "database.sqlite.path") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.sqlite.path")
	}
}

func TestLoad_PostgresInvalidPortOrSSLMode(t *testing.T) {
	path := writeTestConfig(t, validPostgresYAML("port: 5432", "port: 0"))

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for postgres port 0, got nil")
	}
	if !strings.Contains(err.Error(), "database.postgres.port") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.postgres.port")
	}

	path = writeTestConfig(t, validPostgresYAML(`sslmode: "disable"`, `sslmode: "invalid"`))

	_, err = Load(path)
	if err == nil {
		t.Fatal("Load() expected error for invalid postgres sslmode, got nil")
	}
	if !strings.Contains(err.Error(), "database.postgres.sslmode") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.postgres.sslmode")
	}
}

func TestLoad_PostgresSSLMode_ReleaseRestriction(t *testing.T) {
	releaseYAML := strings.Replace(
		strings.Replace(validPostgresYAML("", ""), `mode: "debug"`, `mode: "release"`, 1),
		`jwt_secret: "abcdefghijklmnopqrstuvwxyz123456"`,
		`jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"`,
		1,
	)
	path := writeTestConfig(t, releaseYAML)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for insecure postgres sslmode in release mode, got nil")
	}
	if !strings.Contains(err.Error(), "database.postgres.sslmode") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.postgres.sslmode")
	}

	// Debug mode allows sslmode disable.
	path = writeTestConfig(t, validPostgresYAML("", ""))
	if _, err = Load(path); err != nil {
		t.Fatalf("Load() expected debug mode to allow postgres sslmode disable, got error: %v", err)
	}
}

func TestLoad_NonPositiveDurations(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantContain string
	}{
		{
			name:        "server timeout must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  timeout: \"0s\"", 1),
			wantContain: "server.timeout",
		},
		{
			name:        "cors max age must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  cors:\n    max_age: \"-1s\"", 1),
			wantContain: "server.cors.max_age",
		},
		{
			name:        "pool lifetime must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `conn_max_lifetime: "1m"`, `conn_max_lifetime: "0s"`, 1),
			wantContain: "database.pool.conn_max_lifetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error for non-positive duration, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
			}
		})
	}
}

func TestLoad_OptionalDurationWhitespace_NormalizedAsUnset(t *testing.T) {
	yaml := strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  timeout: \"   \"\n  cors:\n    max_age: \"   \"", 1)
	yaml = strings.Replace(yaml, `conn_max_lifetime: "1m"`, `conn_max_lifetime: "   "`, 1)
	path := writeTestConfig(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Timeout != "" {
		t.Errorf("Server.Timeout = %q, want empty string", cfg.Server.Timeout)
	}
	if cfg.Server.CORS.MaxAge != "" {
		t.Errorf("Server.CORS.MaxAge = %q, want empty string", cfg.Server.CORS.MaxAge)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "" {
		t.Errorf("Database.Pool.ConnMaxLifetime = %q, want empty string", cfg.Database.Pool.ConnMaxLifetime)
	}
}

func TestLoad_RateLimitConfig(t *testing.T) {
	tests := []struct {
		name        string
		block       string
		wantErr     bool
		wantContain string
	}{
		{
			name:        "enabled with zero rps",
			block:       "mode: \"debug\"\n  rate_limit:\n    enabled: true\n    rps: 0\n    burst: 5",
			wantErr:     true,
			wantContain: "server.rate_limit.rps",
		},
		{
			name:        "enabled with zero burst",
			block:       "mode: \"debug\"\n  rate_limit:\n    enabled: true\n    rps: 1\n    burst: 0",
			wantErr:     true,
			wantContain: "server.rate_limit.burst",
		},
		{
			name:    "enabled with valid settings",
			block:   "mode: \"debug\"\n  rate_limit:\n    enabled: true\n    rps: 0.5\n    burst: 5",
			wantErr: false,
		},
		{
			name:    "disabled skips validation",
			block:   "mode: \"debug\"\n  rate_limit:\n    enabled: false\n    rps: -1\n    burst: -1",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, strings.Replace(validBaseYAML(""), `mode: "debug"`, tt.block, 1))
			_, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantContain) {
					t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
				}
			} else if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_AuthConfig(t *testing.T) {
	authYAML := func(block string) string {
		base := `server:
  host: "127.0.0.1"
  port: 3000
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/test.db"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
`
		return base + block
	}

	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		wantContain string
	}{
		{
			name:        "missing auth section",
			yaml:        authYAML(""),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "empty jwt_secret",
			yaml:        authYAML("auth:\n  jwt_secret: \"\"\n  token_expiry: \"24h\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "short jwt_secret",
			yaml:        authYAML("auth:\n  jwt_secret: \"tooshort\"\n  token_expiry: \"24h\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:    "jwt_secret exactly 32 chars passes in debug mode",
			yaml:    authYAML("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n"),
			wantErr: false,
		},
		{
			name:        "invalid token_expiry",
			yaml:        authYAML("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"not-a-duration\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "negative token_expiry",
			yaml:        authYAML("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"-1h\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "invalid otp_ttl",
			yaml:        authYAML("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  otp_ttl: \"bad\"\n"),
			wantErr:     true,
			wantContain: "auth.otp_ttl",
		},
		{
			name:        "zero temp_token_expiry",
			yaml:        authYAML("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  temp_token_expiry: \"0s\"\n"),
			wantErr:     true,
			wantContain: "auth.temp_token_expiry",
		},
		{
			name:    "valid settings in debug mode",
			yaml:    authYAML("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n  temp_token_expiry: \"10m\"\n  otp_ttl: \"10m\"\n"),
			wantErr: false,
		},
		{
			name: "release mode rejects jwt_secret with low complexity",
			yaml: strings.Replace(validReleaseBaseYAML(""),
				`jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"`,
				`jwt_secret: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"`, 1),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:    "release mode accepts jwt_secret with high complexity",
			yaml:    validReleaseBaseYAML(""),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantContain) {
					t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
				}
			} else if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_AuthDurationDefaults(t *testing.T) {
	path := writeTestConfig(t, validBaseYAML(""))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Auth.TempTokenExpiry != "10m" {
		t.Errorf("Auth.TempTokenExpiry = %q, want default %q", cfg.Auth.TempTokenExpiry, "10m")
	}
	if cfg.Auth.OTPTTL != "10m" {
		t.Errorf("Auth.OTPTTL = %q, want default %q", cfg.Auth.OTPTTL, "10m")
	}
	if got := cfg.TokenExpiry().Hours(); got != 24 {
		t.Errorf("TokenExpiry() = %v hours, want 24", got)
	}
	if got := cfg.TempTokenExpiry().Minutes(); got != 10 {
		t.Errorf("TempTokenExpiry() = %v minutes, want 10", got)
	}
	if got := cfg.OTPTTL().Minutes(); got != 10 {
		t.Errorf("OTPTTL() = %v minutes, want 10", got)
	}
}

func TestLoad_DefaultConfig(t *testing.T) {
	// Verify loading the actual project config.yaml works.
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load() error on project config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.Database.Pool.MaxIdleConns != 10 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 10)
	}
	if cfg.Database.Pool.MaxOpenConns != 100 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 100)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "1h" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "1h")
	}
	if cfg.Auth.TokenExpiry != "24h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "24h")
	}
}
