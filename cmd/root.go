package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cityclock/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cityclock",
	Short: "World clock with a city navigation bar",
	Long: `cityclock loads a list of cities from a navigation document, renders
them as a navigation bar and shows the current date and time in the zone of
the selected city. It can serve the page, render a static snapshot, print
times on the command line and expose the clock to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
