package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(body), 0o644))
	t.Chdir(dir)
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"CONFIG_NAME", "DB_HOST", envRedisHost, envRedisPort, envMinIOEndpoint, envMinIOBucket, envJWTSecret} {
		t.Setenv(key, "")
	}
}

func TestNewConfigFromFile(t *testing.T) {
	clearEnv(t)
	writeConfig(t, `
ServiceHost = "127.0.0.1"
ServicePort = 9000
AdminEmail = "boss@example.com"

[Log]
Level = "debug"

[Pricing]
BasePricePerPage = "15.50"
`)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 9000, cfg.ServicePort)
	assert.Equal(t, "boss@example.com", cfg.AdminEmail)

	price, err := cfg.BasePrice()
	require.NoError(t, err)
	assert.Equal(t, "15.5", price.String())

	assert.Empty(t, cfg.DSN)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MinIO.Enabled())
	assert.Equal(t, "paperhelp", cfg.MinIO.Bucket)
}

func TestNewConfigDefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, DefaultAdminEmail, cfg.AdminEmail)
	price, err := cfg.BasePrice()
	require.NoError(t, err)
	assert.Equal(t, "12", price.String())

	assert.Equal(t, defaultJWTSecret, cfg.JWT.Token)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "HS256", cfg.JWT.SigningMethod.Alg())
}

func TestNewConfigJWTSecretFromEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(envJWTSecret, "s3cret")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWT.Token)
}

func TestNewConfigRejectsBadRedisPort(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(envRedisHost, "localhost")
	t.Setenv(envRedisPort, "six")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfigRejectsBadBasePrice(t *testing.T) {
	clearEnv(t)
	writeConfig(t, `
[Pricing]
BasePricePerPage = "twelve"
`)

	_, err := NewConfig()
	assert.Error(t, err)
}
