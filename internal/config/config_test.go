package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "YAHOO_BASE_URL", "YAHOO_TIMEOUT",
		"HTTPS_PROXY", "CRON_WATCH", "LOG_LEVEL", "CONFIG_PATH",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, "0 30 16 * * 1-5", cfg.Schedule.WatchCron)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.DataSource.BaseURL)
	require.NoError(t, cfg.Validate(false))
	assert.Error(t, cfg.Validate(true))
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
telegram:
  bot_token: file-token
  chat_id: "42"
data_source:
  base_url: http://localhost:9000
  timeout: 5s
schedule:
  watch_cron: "0 0 9 * * *"
log:
  level: info
`), 0o644))
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("HTTPS_PROXY", "http://proxy:3128")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram.BotToken)
	assert.Equal(t, "42", cfg.Telegram.ChatID)
	assert.Equal(t, "http://localhost:9000", cfg.DataSource.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, "0 0 9 * * *", cfg.Schedule.WatchCron)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http://proxy:3128", cfg.Proxy)
	assert.NoError(t, cfg.Validate(true))
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("CRON_WATCH=0 15 17 * * 1-5\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("CRON_WATCH") })

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0 15 17 * * 1-5", cfg.Schedule.WatchCron)
}

func TestLoad_BadInput(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("telegram: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	t.Setenv("YAHOO_TIMEOUT", "soon")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
