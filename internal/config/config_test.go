package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: test-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "student_info", cfg.Database.DBName)
	assert.Equal(t, "24h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "studentinfo", cfg.JWT.Issuer)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: production
database:
  host: db.internal
  dbname: records
jwt:
  secret: test-secret
  token_expiration: 12h
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "records", cfg.Database.DBName)
	assert.Equal(t, "12h", cfg.JWT.TokenExpiration)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: file-secret
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8080"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfig_InvalidExpiration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: test-secret
  token_expiration: one-day
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: db.internal
  port: "5433"
  user: app
  password: pw
  dbname: records
  sslmode: require
jwt:
  secret: test-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:pw@db.internal:5433/records?sslmode=require",
		cfg.GetPostgresConnectionString())
}
