package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doc-flyout/internal/demo"
	"github.com/ziadkadry99/doc-flyout/internal/inject"
	"github.com/ziadkadry99/doc-flyout/internal/progress"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate and inject a sample multi-language site",
	Long: `Builds a small sample site with two languages and two versions, writes
a matching .flyout.yml, and injects the widget. Follow up with
` + "`docflyout serve`" + ` to try the flyout in a browser.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("output", "demo-site", "directory for the sample site")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	outputDir, _ := cmd.Flags().GetString("output")

	gen := demo.NewGenerator(outputDir)
	pageCount, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating sample site: %w", err)
	}
	fmt.Printf("Sample site generated: %s (%d pages)\n", outputDir, pageCount)

	cfg := demo.Config(outputDir)
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("Configuration written to %s\n", cfgFile)

	injected, err := inject.New(cfg, progress.NewReporter(verbose)).Run()
	if err != nil {
		return fmt.Errorf("injecting widget: %w", err)
	}
	fmt.Printf("Flyout injected into %d pages; run `docflyout serve` to try it\n", injected)
	return nil
}
