package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doc-flyout/internal/inject"
	"github.com/ziadkadry99/doc-flyout/internal/progress"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Inject the flyout widget into a built documentation site",
	Long: `Walks the configured site directory and rewrites every matching HTML
page: style block into <head>, widget markup and script into <body>.
Injection is idempotent and can be re-run after every site build.`,
	RunE: runInject,
}

func init() {
	injectCmd.Flags().String("site", "", "override the site directory from the config")
	rootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if site, _ := cmd.Flags().GetString("site"); site != "" {
		cfg.SiteDir = site
	}

	if _, err := os.Stat(cfg.SiteDir); os.IsNotExist(err) {
		return fmt.Errorf("site directory not found at %s\nBuild the documentation first, or fix site_dir in %s", cfg.SiteDir, cfgFile)
	}

	injector := inject.New(cfg, progress.NewReporter(verbose))
	count, err := injector.Run()
	if err != nil {
		return fmt.Errorf("injecting widget: %w", err)
	}

	fmt.Printf("Flyout injected into %d pages under %s\n", count, cfg.SiteDir)
	return nil
}
