package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cityclock/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cityclock configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that writes a .cityclock.yml file and, if missing, a starter navigation document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
