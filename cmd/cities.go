package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cityclock/internal/clock"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the navigation cities with their current time",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, err := widgetOptionsFromConfig(cfg, newLogger(false))
		if err != nil {
			return err
		}

		items, err := opts.Loader.Load(cmd.Context())
		if err != nil {
			return err
		}

		now := clock.Now()
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"#", "City", "Section", "Time Zone", "Now"})
		for i, it := range items {
			zone, ok := opts.Zones.Resolve(it.Label, it.Timezone)
			display := "-"
			if ok {
				if s, err := opts.Formatter.Format(now, zone); err == nil {
					display = s
				} else {
					display = "invalid zone"
				}
			} else {
				zone = "-"
			}
			t.AppendRow(table.Row{i, it.Label, it.Section, zone, display})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}
