package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/config"
	"github.com/ziadkadry99/cityclock/internal/navigation"
	"github.com/ziadkadry99/cityclock/internal/page"
	"github.com/ziadkadry99/cityclock/internal/widget"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cityclock init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createSourceFromConfig picks the remote source when a base URL is set and
// the local file otherwise.
func createSourceFromConfig(cfg *config.Config) (navigation.Source, error) {
	if cfg.Navigation.BaseURL != "" {
		return navigation.NewHTTPSource(cfg.Navigation.BaseURL, cfg.NavigationTimeout())
	}
	return navigation.NewFileSource(cfg.Navigation.Path), nil
}

// newLogger returns a stderr logger, or a silent one unless alwaysLog or
// --verbose is set.
func newLogger(alwaysLog bool) *log.Logger {
	if alwaysLog || verbose {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// widgetOptionsFromConfig assembles everything a widget needs from config.
func widgetOptionsFromConfig(cfg *config.Config, logger *log.Logger) (widget.Options, error) {
	src, err := createSourceFromConfig(cfg)
	if err != nil {
		return widget.Options{}, fmt.Errorf("creating navigation source: %w", err)
	}
	formatter, err := clock.NewFormatter(cfg.Clock.Locale)
	if err != nil {
		return widget.Options{}, err
	}

	var shell []byte
	if cfg.Shell != "" {
		shell, err = os.ReadFile(cfg.Shell)
		if err != nil {
			return widget.Options{}, fmt.Errorf("reading page shell: %w", err)
		}
	}

	return widget.Options{
		Shell:       shell,
		Loader:      navigation.NewLoader(src),
		Formatter:   formatter,
		Zones:       cfg.Zones(),
		DefaultZone: cfg.Clock.DefaultTimezone,
		Layout: page.Layout{
			Measurer: page.TextMeasurer{CharWidth: cfg.Layout.CharWidth, Padding: cfg.Layout.Padding},
			Gap:      cfg.Layout.Gap,
		},
		Logger: logger,
	}, nil
}
