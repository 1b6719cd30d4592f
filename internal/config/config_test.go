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

func writeConfig(t *testing.T, home string, body string) string {
	t.Helper()

	dir := filepath.Join(home, ".config", "itimer")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(viper.New(), Options{HomeDir: home})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, filepath.Join(home, ".config", "itimer", "secrets"), cfg.SecretsDir)
	assert.Equal(t, PollerConfig{PollInterval: 8 * time.Second, StartupDelay: 2 * time.Second, TickSeconds: 8}, cfg.Poller)
	assert.Equal(t, DedupeConfig{Window: 30 * time.Second, HighWater: 100}, cfg.Dedupe)
	assert.Equal(t, NotificationConfig{Enter: 300 * time.Millisecond, Display: 10 * time.Second, Exit: 320 * time.Millisecond}, cfg.Notifications)
	assert.Empty(t, cfg.File)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, `
base_url = "https://practice.example.com"

[poller]
poll_interval = "5s"
stop_on_ended = true

[log]
level = "debug"
`)

	cfg, err := Load(viper.New(), Options{HomeDir: home})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "https://practice.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Poller.PollInterval)
	assert.True(t, cfg.Poller.StopOnEnded)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Poller.StartupDelay)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "base_url = \"https://file.example.com\"\n")
	t.Setenv("ITIMER_BASE_URL", "https://env.example.com")
	t.Setenv("ITIMER_DEDUPE_WINDOW", "45s")

	cfg, err := Load(viper.New(), Options{HomeDir: home})
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Dedupe.Window)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	_, err := Load(viper.New(), Options{HomeDir: t.TempDir(), ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "non-positive poll interval", body: "[poller]\npoll_interval = \"0s\"\n", wantErr: KeyPollInterval},
		{name: "negative window", body: "[dedupe]\nwindow = \"-1s\"\n", wantErr: KeyDedupeWindow},
		{name: "zero high water", body: "[dedupe]\nhigh_water = 0\n", wantErr: KeyDedupeHigh},
		{name: "bad base url", body: "base_url = \"localhost:8000\"\n", wantErr: KeyBaseURL},
		{name: "negative startup delay", body: "[poller]\nstartup_delay = \"-2s\"\n", wantErr: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.body)

			_, err := Load(viper.New(), Options{HomeDir: home})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "base_url = \n")

	_, err := Load(viper.New(), Options{HomeDir: home})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
