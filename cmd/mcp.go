package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cityclock/internal/clock"
	mcpserver "github.com/ziadkadry99/cityclock/internal/mcp"
	"github.com/ziadkadry99/cityclock/internal/navigation"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing list_cities, city_time and zone_time tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := createSourceFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating navigation source: %w", err)
		}
		formatter, err := clock.NewFormatter(cfg.Clock.Locale)
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "cityclock MCP server started on stdio (navigation=%s)\n", describeSource(src))

		srv := mcpserver.NewServer(navigation.NewLoader(src), formatter, cfg.Zones())
		return srv.Serve()
	},
}

func describeSource(src navigation.Source) string {
	switch s := src.(type) {
	case *navigation.HTTPSource:
		return s.URL()
	case *navigation.FileSource:
		return s.Path
	default:
		return "custom"
	}
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
