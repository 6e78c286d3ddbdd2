package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doc-flyout/internal/nav"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <axis> <code>",
	Short: "Resolve a navigation target from the command line",
	Long: `Runs one resolution the way the widget would: substitute the axis
segment in --path, probe the served URL, and print the result. Useful
for checking what a reader switching language or version would reach.`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("path", "", "current page path, e.g. /en/latest/guide.html (required)")
	resolveCmd.Flags().String("origin", "", "serving origin, e.g. https://docs.example.com (required unless --local)")
	resolveCmd.Flags().Bool("local", false, "treat the page as opened from the filesystem (skips the probe)")
	_ = resolveCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	axis, ok := nav.ParseAxis(args[0])
	if !ok {
		return fmt.Errorf("axis must be %q or %q, got %q", nav.AxisLanguage, nav.AxisVersion, args[0])
	}
	code := args[1]

	path, _ := cmd.Flags().GetString("path")
	origin, _ := cmd.Flags().GetString("origin")
	local, _ := cmd.Flags().GetBool("local")

	if !local && origin == "" {
		return fmt.Errorf("--origin is required unless --local is set")
	}
	origin = strings.TrimSuffix(origin, "/")

	resolver := nav.NewResolver(nav.Context{
		Language: cfg.CurrentLanguage,
		Version:  cfg.CurrentVersion,
		PagePath: path,
		Origin:   origin,
		Local:    local,
		AssetDir: origin + "/" + cfg.AssetPath,
	}, nil)

	fmt.Println(resolver.Resolve(cmd.Context(), axis, code))
	return nil
}
