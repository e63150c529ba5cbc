// Package config provides configuration management for exportpoll.
// It handles loading, validating and saving the backend endpoints,
// credentials and polling settings kept in a YAML file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
	"github.com/cperrin88/exportpoll/pkg/fsutil"
	"github.com/cperrin88/exportpoll/pkg/status"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Hub      HubConfig    `yaml:"hub"`
	Portal   PortalConfig `yaml:"portal"`
	Settings Settings     `yaml:"settings"`
}

// HubConfig locates the hub indexing service.
type HubConfig struct {
	URL  string      `yaml:"url"`
	Auth *AuthConfig `yaml:"auth,omitempty"`
}

// PortalConfig locates the portal or enterprise REST API and the account
// export items are created under.
type PortalConfig struct {
	// URL is the REST root, e.g. https://www.example.com/sharing/rest.
	URL           string `yaml:"url,omitempty"`
	Username      string `yaml:"username,omitempty"`
	Token         string `yaml:"token,omitempty"`
	HoldingFolder string `yaml:"holding_folder"`
}

// Settings represents general application settings.
type Settings struct {
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	LockWindow   time.Duration `yaml:"lock_window"`

	OutputFormat string `yaml:"output_format"` // json, text
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultHubURL        = "https://hub.arcgis.com"
	DefaultHoldingFolder = "Hub Exports"
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultPollInterval  = 5 * time.Second
	DefaultLockWindow    = status.DefaultLockWindow

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Hub: HubConfig{URL: DefaultHubURL},
		Portal: PortalConfig{
			HoldingFolder: DefaultHoldingFolder,
		},
		Settings: Settings{
			HTTPTimeout:  DefaultHTTPTimeout,
			PollInterval: DefaultPollInterval,
			LockWindow:   DefaultLockWindow,
			OutputFormat: "text",
			LogLevel:     "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig writes the configuration atomically. The file is only readable
// by its owner because it may contain the portal token.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath, fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := c.ToYAML()
	if err != nil {
		return err
	}

	if err := fsutil.WriteFileAtomic(absPath, data, fsutil.FileModePrivate); err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}
	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	var b bytes.Buffer
	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return b.Bytes(), nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateURL("hub.url", c.Hub.URL, true); err != nil {
		return err
	}
	if err := validatePortal(c.Portal); err != nil {
		return err
	}
	return validateSettings(c.Settings)
}

func validateURL(key, raw string, required bool) error {
	if raw == "" {
		if required {
			return errors.ErrInvalidURLWithKey(key, raw)
		}
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.ErrInvalidURLWithKey(key, raw)
	}
	return nil
}

func validatePortal(p PortalConfig) error {
	if err := validateURL("portal.url", p.URL, false); err != nil {
		return err
	}
	if p.HoldingFolder == "" {
		return errors.ErrHoldingFolderEmpty
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeoutNegative
	}
	if s.PollInterval <= 0 {
		return errors.ErrPollIntervalInvalid
	}
	if s.LockWindow < 0 {
		return errors.ErrLockWindowNegative
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

// PortalConfigured reports whether portal and enterprise targets can be served.
func (c *Config) PortalConfigured() bool {
	return c.Portal.URL != ""
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "exportpoll", "config.yaml"), nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Hub.URL == "" {
		c.Hub.URL = defaults.Hub.URL
	}
	if c.Portal.HoldingFolder == "" {
		c.Portal.HoldingFolder = defaults.Portal.HoldingFolder
	}
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.PollInterval == 0 {
		c.Settings.PollInterval = defaults.Settings.PollInterval
	}
	if c.Settings.LockWindow == 0 {
		c.Settings.LockWindow = defaults.Settings.LockWindow
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
