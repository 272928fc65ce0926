package config

import (
	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/navigation"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".cityclock.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port: 8080,
		Navigation: NavigationConfig{
			Path:           navigation.DefaultPath,
			TimeoutSeconds: 10,
		},
		Clock: ClockConfig{
			Locale:          clock.DefaultLocale,
			DefaultTimezone: clock.DefaultZone,
		},
		Layout: LayoutConfig{
			CharWidth: 9,
			Padding:   16,
		},
	}
}

// Zones returns the stock label table with configured entries merged in.
func (c *Config) Zones() clock.Table {
	return clock.DefaultTable().Merge(c.Clock.Timezones)
}
