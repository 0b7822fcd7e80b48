package handlers

import (
	"seoforge/internal/server"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command: the HTTP API over the pipeline.
func NewServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serves the content pipeline over HTTP:

  POST /generate-plan     business profile -> research, strategy and plan
  POST /generate-article  title and keywords -> scored article bundle
  POST /evaluate-content  existing article -> quality report and estimate
  GET  /health            liveness check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			ctx := cmd.Context()
			orchestrator, err := buildOrchestrator(ctx, cfg)
			if err != nil {
				return err
			}

			return server.New(orchestrator, cfg.Server).Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")

	return cmd
}
