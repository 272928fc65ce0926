package config

// Config is the top-level cityclock configuration, corresponding to .cityclock.yml.
type Config struct {
	Port            int              `yaml:"port" koanf:"port"`
	AllowAllOrigins bool             `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Shell           string           `yaml:"shell" koanf:"shell"`
	Navigation      NavigationConfig `yaml:"navigation" koanf:"navigation"`
	Clock           ClockConfig      `yaml:"clock" koanf:"clock"`
	Layout          LayoutConfig     `yaml:"layout" koanf:"layout"`
}

// NavigationConfig says where the navigation document comes from. When
// BaseURL is set the document is fetched from ./js/navigation.json relative
// to it; otherwise Path is read from disk.
type NavigationConfig struct {
	Path           string `yaml:"path" koanf:"path"`
	BaseURL        string `yaml:"base_url" koanf:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ClockConfig holds the clock display settings.
type ClockConfig struct {
	Locale          string            `yaml:"locale" koanf:"locale"`
	DefaultTimezone string            `yaml:"default_timezone" koanf:"default_timezone"`
	Timezones       map[string]string `yaml:"timezones" koanf:"timezones"`
}

// LayoutConfig approximates rendered label widths for the underline marker.
type LayoutConfig struct {
	CharWidth int `yaml:"char_width" koanf:"char_width"`
	Padding   int `yaml:"padding" koanf:"padding"`
	Gap       int `yaml:"gap" koanf:"gap"`
}
