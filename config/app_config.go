package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	yaml "github.com/jesseduffield/yaml"
	"github.com/spkg/bom"
)

// AppConfig contains the base configuration fields required for the cli.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"rijndael"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `rijndael config`.
type UserConfig struct {
	// Cipher determines how files are encrypted and decrypted
	Cipher CipherConfig `yaml:"cipher,omitempty"`

	// CLI is for configuring what the command line output looks like
	CLI CLIConfig `yaml:"cli,omitempty"`
}

// CipherConfig determines the substitution variant and the worker pool
type CipherConfig struct {
	// Variant is either rijndael (the S-box) or additive (round key byte added mod 256). Files encrypted with one variant can only be decrypted with the same one
	Variant string `yaml:"variant,omitempty"`

	// Workers is the number of goroutines processing blocks. 0 means one per CPU
	Workers int `yaml:"workers,omitempty"`

	// LenientKeys accepts text keys of any length: longer ones are truncated to 16 bytes, shorter ones are padded with '0'
	LenientKeys bool `yaml:"lenientKeys,omitempty"`

	// Trace writes every round step to the development log. Slow, only useful together with --debug
	Trace bool `yaml:"trace,omitempty"`
}

// CLIConfig is for configuring the terminal output
type CLIConfig struct {
	// Language is auto, en or ru
	Language string `yaml:"language,omitempty"`

	// ProgressInterval is the minimum time between two progress lines
	ProgressInterval time.Duration `yaml:"progressInterval,omitempty"`
}

// GetDefaultConfig returns the application default configuration
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Cipher: CipherConfig{
			Variant:     "rijndael",
			Workers:     0,
			LenientKeys: false,
			Trace:       false,
		},
		CLI: CLIConfig{
			Language:         "auto",
			ProgressInterval: 250 * time.Millisecond,
		},
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	if err := userConfig.Validate(); err != nil {
		return nil, errors.WrapPrefix(err, ConfigFilename(configDir), 0)
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

// findOrCreateConfigDir resolves the directory under the XDG config home.
// CONFIG_DIR overrides it, which the tests rely on.
func findOrCreateConfigDir(projectName string) (string, error) {
	folder := os.Getenv("CONFIG_DIR")
	if folder == "" {
		folder = xdg.New("nPaBwaYT", projectName).ConfigHome()
	}

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.Wrap(err, 0)
	}

	return folder, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := ConfigFilename(configDir)

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, errors.Wrap(err, 0)
			}
			file.Close()
		} else {
			return nil, errors.Wrap(err, 0)
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	var fromFile UserConfig
	if err := yaml.Unmarshal(bom.Clean(content), &fromFile); err != nil {
		return nil, errors.WrapPrefix(err, fileName, 0)
	}

	if err := mergo.Merge(base, fromFile, mergo.WithOverride); err != nil {
		return nil, errors.Wrap(err, 0)
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or
// empty string this is because we are using the omitempty yaml directive so
// that we don't write a heap of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return ConfigFilename(c.ConfigDir)
}

// ConfigFilename returns the path of config.yml inside configDir
func ConfigFilename(configDir string) string {
	return filepath.Join(configDir, "config.yml")
}
