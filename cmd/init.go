package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doc-flyout/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .flyout.yml through an interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(".flyout.yml"); err == nil {
			return fmt.Errorf(".flyout.yml already exists; edit it directly or remove it first")
		}

		if _, err := config.RunWizard(); err != nil {
			return fmt.Errorf("running wizard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
