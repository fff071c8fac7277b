package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"), "")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "sequential", cfg.SequenceMode)
	assert.Equal(t, 8, cfg.SequenceMaxAttempts)
	assert.Equal(t, 3, cfg.PricingMirrorAttempts)
	assert.Equal(t, 3*time.Second, cfg.LookupTimeout())
	assert.Equal(t, 12*time.Hour, cfg.StaleDocumentAge())
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("SEQUENCE_MODE: random\nDB_NAME: fromfile\n"), 0o600))
	t.Setenv("DB_NAME", "fromenv")

	cfg, err := LoadConfig("", dir)

	require.NoError(t, err)
	assert.Equal(t, "random", cfg.SequenceMode)
	assert.Equal(t, "fromenv", cfg.DBName)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("REDIS_ADDR=redis:6379\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_ADDR") })

	cfg, err := LoadConfig(envFile, "")

	require.NoError(t, err)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "hub", DBPassword: "secret", DBName: "hubops", DBSslMode: "disable"}

	assert.Equal(t, "host=db user=hub password=secret dbname=hubops port=5432 sslmode=disable", cfg.DSN())
}

func TestConfig_NewLogger(t *testing.T) {
	logger, err := Config{LogLevel: "warn"}.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = Config{LogLevel: "chatty"}.NewLogger()
	assert.Error(t, err)
}
