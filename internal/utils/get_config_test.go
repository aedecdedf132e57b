package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "APP_PORT: \"9000\"\nSTORAGE_DRIVER: postgres\nDB_HOST: db.local\nTIMEZONE: Asia/Jakarta\n")

	LoadConfigFile(path)

	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "postgres", GetConfig("STORAGE_DRIVER"))
	assert.Equal(t, "db.local", GetConfig("DB_HOST"))
	assert.Equal(t, "./logs", GetConfig("LOG_DIR"))
	assert.Equal(t, "", GetConfig("SMTP_HOST"))
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}

func TestLoadConfigFile_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "APP_PORT: \"9000\"\n")
	t.Setenv("APP_PORT", "7000")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	LoadConfigFile(path)

	assert.Equal(t, "7000", GetConfig("APP_PORT"))
	assert.Equal(t, "smtp.example.com", GetConfig("SMTP_HOST"))
}

func TestLoadConfigFile_MissingFileUsesDefaults(t *testing.T) {
	LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "memory", GetConfig("STORAGE_DRIVER"))
	assert.Equal(t, "20", GetConfig("RATE_LIMIT_MAX"))
}

func TestGetLocation(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")
	LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, time.UTC, GetLocation())

	t.Setenv("TIMEZONE", "Mars/Olympus")
	LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, time.Local, GetLocation())
}
