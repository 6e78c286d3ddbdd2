package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/doc-flyout/internal/inject"
	"github.com/ziadkadry99/doc-flyout/internal/progress"
	"github.com/ziadkadry99/doc-flyout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the injected site locally",
	Long: `Starts a local HTTP server for the injected documentation site, with a
/api/resolve endpoint exposing the server-side URL resolver. With
--watch, page changes re-inject the widget and live-reload connected
browsers.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the local server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "re-inject and live-reload on page changes")
	serveCmd.Flags().Bool("allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.SiteDir); os.IsNotExist(err) {
		return fmt.Errorf("site directory not found at %s\nRun `docflyout inject` first", cfg.SiteDir)
	}

	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")
	watch, _ := cmd.Flags().GetBool("watch")
	allowAll, _ := cmd.Flags().GetBool("allow-all")

	srv := server.New(server.Config{
		Port:     port,
		AllowAll: allowAll,
		Watch:    watch,
	}, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if watch {
		// A single injector keeps the build stamp stable across
		// re-injections, so unchanged pages stay byte-identical.
		injector := inject.New(cfg, progress.Quiet{})
		if _, err := injector.Run(); err != nil {
			return fmt.Errorf("initial injection: %w", err)
		}
		go func() {
			if err := srv.Watch(ctx, func() error {
				_, err := injector.Run()
				return err
			}); err != nil {
				log.Printf("Watcher stopped: %v", err)
			}
		}()
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	if open {
		go openBrowser(url)
	}
	fmt.Printf("Serving documentation at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
