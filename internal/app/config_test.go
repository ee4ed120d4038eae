package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/app"
	"contactbook/internal/session"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contactbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := app.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.PageSize)
		assert.Equal(t, session.BlankLineIgnore, cfg.BlankLine)
		assert.Equal(t, "> ", cfg.Prompt)
		assert.True(t, cfg.Color)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.NotNil(t, cfg.Now)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
page_size: 5
blank_line: exit
color: false
logging:
  level: debug
  format: json
`)
	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, session.BlankLineExit, cfg.BlankLine)
	assert.False(t, cfg.Color)
	assert.Equal(t, "> ", cfg.Prompt, "unset keys keep their defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"page size":  "page_size: 0\n",
		"blank line": "blank_line: explode\n",
		"format":     "logging:\n  format: xml\n",
		"syntax":     "page_size: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := app.LoadConfig(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := app.DefaultConfig().Logging
	cfg.File = filepath.Join(t.TempDir(), "contactbook.log")

	log, err := app.NewLogger(cfg, true)
	require.NoError(t, err)
	log.Debug("hello")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	cfg.Level = "loud"
	_, err = app.NewLogger(cfg, false)
	require.Error(t, err)
}
