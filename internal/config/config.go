package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/cityclock/internal/clock"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CITYCLOCK_*). Nested keys use a double
// underscore: CITYCLOCK_CLOCK__LOCALE -> clock.locale.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("CITYCLOCK_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "CITYCLOCK_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.Navigation.Path == "" && c.Navigation.BaseURL == "" {
		return fmt.Errorf("navigation.path or navigation.base_url is required")
	}
	if c.Navigation.BaseURL != "" {
		u, err := url.Parse(c.Navigation.BaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("invalid navigation.base_url %q", c.Navigation.BaseURL)
		}
	}
	if c.Navigation.TimeoutSeconds < 0 {
		return fmt.Errorf("navigation.timeout_seconds must be non-negative")
	}

	if _, err := clock.NewFormatter(c.Clock.Locale); err != nil {
		return fmt.Errorf("invalid clock.locale: %w", err)
	}
	if c.Clock.DefaultTimezone == "" {
		return fmt.Errorf("clock.default_timezone is required")
	}
	if _, err := time.LoadLocation(c.Clock.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid clock.default_timezone %q: %w", c.Clock.DefaultTimezone, err)
	}
	for label, zone := range c.Clock.Timezones {
		if zone == "" {
			return fmt.Errorf("empty time zone for %q", label)
		}
		if _, err := time.LoadLocation(zone); err != nil {
			return fmt.Errorf("invalid time zone %q for %q: %w", zone, label, err)
		}
	}

	if c.Layout.CharWidth <= 0 {
		return fmt.Errorf("layout.char_width must be positive")
	}
	if c.Layout.Padding < 0 || c.Layout.Gap < 0 {
		return fmt.Errorf("layout.padding and layout.gap must be non-negative")
	}

	return nil
}

// NavigationTimeout returns the fetch timeout for remote navigation documents.
func (c *Config) NavigationTimeout() time.Duration {
	return time.Duration(c.Navigation.TimeoutSeconds) * time.Second
}
