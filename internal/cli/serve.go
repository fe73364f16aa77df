package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ovrica/sget/internal/config"
	"github.com/ovrica/sget/internal/server"
)

var (
	serveListen string
	serveDaemon bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the download-link API server",
	Long: `Run the HTTP API server that resolves social media links.

Endpoints:
  GET  /api/{platform}?url=...   resolve a link (facebook, instagram,
                                 tiktok, twitter, spotify, youtube)
  POST /api/{platform}           same, URL in a JSON body
  GET  /healthz                  liveness and upstream health

Examples:
  sget serve
  sget serve --listen :9000
  sget serve --daemon`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVarP(&serveDaemon, "daemon", "d", false, "run in the background")

	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	if serveDaemon {
		return daemonize()
	}

	cfg := config.LoadOrDefault()
	if serveListen != "" {
		cfg.Listen = serveListen
	}

	fmt.Printf("Listening on %s\n", cfg.Listen)
	return server.New(cfg).Run()
}

// daemonize re-executes the serve command detached from the terminal
func daemonize() error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}

	args := []string{"serve"}
	if serveListen != "" {
		args = append(args, "--listen", serveListen)
	}

	cmd := exec.Command(executable, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	setSysProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	fmt.Printf("Server started in background (pid %d)\n", cmd.Process.Pid)
	return nil
}
