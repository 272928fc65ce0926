package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cityclock/internal/widget"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a static snapshot of the clock page",
	Long:  `Loads the navigation, runs startup and optionally one click, then writes the resulting HTML page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		opts, err := widgetOptionsFromConfig(cfg, newLogger(false))
		if err != nil {
			return err
		}

		w, err := widget.New(opts)
		if err != nil {
			return err
		}
		if err := w.Start(cmd.Context()); err != nil {
			return err
		}

		if cmd.Flags().Changed("active") {
			active, _ := cmd.Flags().GetInt("active")
			if err := w.Click(active); err != nil {
				return fmt.Errorf("activating %d: %w", active, err)
			}
		}

		html, err := w.HTML()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		}
		if err := os.WriteFile(out, []byte(html), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", out)
		return nil
	},
}

func init() {
	renderCmd.Flags().Int("active", 0, "key of the entry to click after startup")
	renderCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}
