package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, content string) (*AppConfig, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DEBUG", "")
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))
	}
	return NewAppConfig("rijndael", "version", "commit", "date", "buildSource", false)
}

func TestNewAppConfigCreatesEmptyFile(t *testing.T) {
	conf, err := newTestConfig(t, "")
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), *conf.UserConfig)
	assert.False(t, conf.Debug)

	info, err := os.Stat(conf.ConfigFilename())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	conf, err := newTestConfig(t, "cipher:\n  variant: additive\n  workers: 3\ncli:\n  progressInterval: 1s\n")
	require.NoError(t, err)

	assert.Equal(t, "additive", conf.UserConfig.Cipher.Variant)
	assert.Equal(t, 3, conf.UserConfig.Cipher.Workers)
	assert.Equal(t, time.Second, conf.UserConfig.CLI.ProgressInterval)
	// не указанные в файле поля остаются по умолчанию
	assert.Equal(t, "auto", conf.UserConfig.CLI.Language)
}

func TestUserConfigWithByteOrderMark(t *testing.T) {
	conf, err := newTestConfig(t, "\xef\xbb\xbfcli:\n  language: ru\n")
	require.NoError(t, err)
	assert.Equal(t, "ru", conf.UserConfig.CLI.Language)
}

func TestUserConfigValidation(t *testing.T) {
	type scenario struct {
		name    string
		content string
	}

	scenarios := []scenario{
		{"unknown variant", "cipher:\n  variant: des\n"},
		{"negative workers", "cipher:\n  workers: -2\n"},
		{"unknown language", "cli:\n  language: fr\n"},
		{"malformed yaml", "cipher: [\n"},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			_, err := newTestConfig(t, s.content)
			assert.Error(t, err)
		})
	}
}

func TestWritingToConfigFile(t *testing.T) {
	conf, err := newTestConfig(t, "")
	require.NoError(t, err)

	err = conf.WriteToUserConfig(func(uc *UserConfig) error {
		uc.Cipher.Trace = true
		return nil
	})
	require.NoError(t, err)

	content, err := os.ReadFile(conf.ConfigFilename())
	require.NoError(t, err)

	var written UserConfig
	require.NoError(t, yaml.Unmarshal(content, &written))
	assert.True(t, written.Cipher.Trace)
	assert.Empty(t, written.Cipher.Variant)

	reloaded, err := NewAppConfig("rijndael", "version", "commit", "date", "buildSource", true)
	require.NoError(t, err)
	assert.True(t, reloaded.UserConfig.Cipher.Trace)
	assert.True(t, reloaded.Debug)
}

func TestDefaultConfigIsValid(t *testing.T) {
	defaults := GetDefaultConfig()
	assert.NoError(t, defaults.Validate())
}
