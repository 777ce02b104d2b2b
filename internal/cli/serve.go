package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/daemon"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveWebDir, "web", "", "Directory with the dashboard SPA (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost   string
	servePort   int
	serveWebDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Study Quest API server",
	Long:  `Start the JSON REST API server and dashboard at localhost:3001.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	// Override config from flags
	if serveHost != "" {
		cfg.API.Host = serveHost
	}
	if servePort > 0 {
		cfg.API.Port = servePort
	}
	if serveWebDir != "" {
		cfg.Web.Dir = serveWebDir
	}

	d, err := daemon.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	return d.Serve(context.Background())
}
