package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/config"
	"github.com/ziadkadry99/cityclock/internal/navigation"
)

var nowCmd = &cobra.Command{
	Use:   "now [city]",
	Short: "Print the current time for a city, a zone or the default zone",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		formatter, err := clock.NewFormatter(cfg.Clock.Locale)
		if err != nil {
			return err
		}

		zone, _ := cmd.Flags().GetString("zone")
		switch {
		case zone != "":
		case len(args) == 1:
			zone, err = cityZone(cmd, cfg, args[0])
			if err != nil {
				return err
			}
		default:
			zone = cfg.Clock.DefaultTimezone
		}

		s, err := formatter.Format(clock.Now(), zone)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

// cityZone resolves a city label, preferring a zone set on the navigation
// record. The table alone is used when the document cannot be loaded.
func cityZone(cmd *cobra.Command, cfg *config.Config, city string) (string, error) {
	var explicit string
	src, err := createSourceFromConfig(cfg)
	if err != nil {
		return "", fmt.Errorf("creating navigation source: %w", err)
	}
	items, err := navigation.NewLoader(src).Load(cmd.Context())
	if err != nil {
		newLogger(false).Printf("now: %v", err)
	} else if it, ok := navigation.Find(items, city); ok {
		explicit = it.Timezone
	}

	zone, ok := cfg.Zones().Resolve(city, explicit)
	if !ok {
		return "", fmt.Errorf("no time zone is known for %q", city)
	}
	return zone, nil
}

func init() {
	nowCmd.Flags().String("zone", "", "IANA time zone to use instead of a city")
	rootCmd.AddCommand(nowCmd)
}
