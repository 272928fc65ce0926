package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/navigation"
)

// RunWizard runs an interactive configuration wizard, saves the resulting
// Config to path and writes a starter navigation document if none exists.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to cityclock! Let's configure your clock.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return errors.New("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Startup city.
	table := clock.DefaultTable()
	labels := table.Labels()
	cityPrompt := promptui.Select{
		Label: "Select the city shown at startup",
		Items: labels,
	}
	idx, _, err := cityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("startup city: %w", err)
	}
	cfg.Clock.DefaultTimezone = table[labels[idx]]

	// 3. Navigation document.
	navPrompt := promptui.Prompt{
		Label:   "Navigation document path",
		Default: cfg.Navigation.Path,
	}
	navPath, err := navPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("navigation path: %w", err)
	}
	cfg.Navigation.Path = navPath

	created, err := WriteStarterNavigation(navPath)
	if err != nil {
		return nil, err
	}
	if created {
		fmt.Printf("Wrote starter navigation to %s\n", navPath)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// WriteStarterNavigation writes the stock city list to path unless a file
// already exists there. It reports whether a file was written.
func WriteStarterNavigation(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("accessing %s: %w", path, err)
	}

	data, err := json.MarshalIndent(navigation.Document{Cities: navigation.DefaultCities()}, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encoding navigation: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
