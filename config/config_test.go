package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "sehat", cfg.DB.Name)
	assert.Equal(t, "postgres", cfg.DB.User)
	assert.Equal(t, "1234", cfg.DB.Password)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 5*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Len(t, cfg.App.AllowedOrigins, 5)
	assert.NotEmpty(t, cfg.JWT.Secret)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "clinic_test")
	t.Setenv("GEMINI_API_KEY", "  key-123  ")
	t.Setenv("REMINDER_DISPATCH_INTERVAL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "clinic_test", cfg.DB.Name)
	assert.Equal(t, "key-123", cfg.Gemini.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Reminder.DispatchInterval)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=8088\nGEMINI_TIMEOUT=bogus\n"), 0o600))

	cfg, err := load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := load(viper.New(), "")
	assert.Error(t, err)
}
