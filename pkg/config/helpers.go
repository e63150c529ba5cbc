package config

import (
	"fmt"
	"time"

	"github.com/cperrin88/exportpoll/pkg/errors"
)

// Keys lists the settings that can be read and written with GetValue and SetValue.
var Keys = []string{
	"hub_url",
	"portal_url",
	"username",
	"token",
	"holding_folder",
	"http_timeout",
	"poll_interval",
	"lock_window",
	"output_format",
	"log_level",
}

const redacted = "********"

// SetValue sets a configuration value by key. Durations use Go syntax, e.g. "5s".
// The result is not validated; call Validate before saving.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "hub_url":
		c.Hub.URL = value
	case "portal_url":
		c.Portal.URL = value
	case "username":
		c.Portal.Username = value
	case "token":
		c.Portal.Token = value
	case "holding_folder":
		c.Portal.HoldingFolder = value
	case "http_timeout", "poll_interval", "lock_window":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %s", key, value)
		}
		*c.durationField(key) = d
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnknownConfigKey, key)
	}
	return nil
}

// GetValue returns a configuration value by key.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "hub_url":
		return c.Hub.URL, nil
	case "portal_url":
		return c.Portal.URL, nil
	case "username":
		return c.Portal.Username, nil
	case "token":
		return c.Portal.Token, nil
	case "holding_folder":
		return c.Portal.HoldingFolder, nil
	case "http_timeout", "poll_interval", "lock_window":
		return c.durationField(key).String(), nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrUnknownConfigKey, key)
	}
}

func (c *Config) durationField(key string) *time.Duration {
	switch key {
	case "http_timeout":
		return &c.Settings.HTTPTimeout
	case "poll_interval":
		return &c.Settings.PollInterval
	default:
		return &c.Settings.LockWindow
	}
}

// ToMap returns every key with its value for display. The token is redacted.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys))
	for _, key := range Keys {
		v, _ := c.GetValue(key)
		if key == "token" && v != "" {
			v = redacted
		}
		result[key] = v
	}
	return result
}
