package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nPaBwaYT/rijndael/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerDiscards(t *testing.T) {
	entry := NewLogger(&config.AppConfig{Version: "1.0"})

	assert.Equal(t, logrus.ErrorLevel, entry.Logger.GetLevel())
	assert.Equal(t, "1.0", entry.Data["version"])
	assert.Equal(t, false, entry.Data["debug"])
}

func TestDevelopmentLoggerWritesToConfigDir(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	dir := t.TempDir()

	entry := NewLogger(&config.AppConfig{Debug: true, ConfigDir: dir, Commit: "abc"})
	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())

	entry.Debug("hidden")
	entry.Info("зашифровано")

	content, err := os.ReadFile(filepath.Join(dir, "development.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "зашифровано")
	assert.Contains(t, string(content), `"commit":"abc"`)
	assert.NotContains(t, string(content), "hidden")
}

func TestDiscardLoggerWritesNowhere(t *testing.T) {
	entry := NewDiscardLogger()
	entry.Error("не попадет в журнал")

	assert.Equal(t, logrus.ErrorLevel, entry.Logger.GetLevel())
	assert.Equal(t, io.Discard, entry.Logger.Out)
}
