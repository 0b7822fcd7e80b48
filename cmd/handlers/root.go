package handlers

import (
	"context"
	"fmt"

	"seoforge/internal/config"
	"seoforge/internal/llm"
	"seoforge/internal/logger"
	"seoforge/internal/pipeline"

	"github.com/spf13/cobra"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seoforge",
		Short: "Generate SEO content plans and articles for your business",
		Long: `Seoforge - SEO Content Pipeline

Turns a business description into an SEO content plan and full articles,
then scores the result: keyword research, strategy, a dated content
calendar, article writing, quality review and a performance estimate.

Examples:
  # Generate a content plan from a business profile
  seoforge plan profile.yaml

  # Write a single article
  seoforge article --title "CRM Buying Guide" --keywords "crm,crm software"

  # Generate every article on a plan's calendar
  seoforge calendar profile.yaml --output articles/

  # Run the HTTP API
  seoforge serve`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .seoforge.yaml)")

	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewArticleCmd())
	rootCmd.AddCommand(NewCalendarCmd())
	rootCmd.AddCommand(NewServeCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig loads configuration and initializes logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Logging.Level)
	return cfg, nil
}

// buildOrchestrator wires the Gemini client and pipeline from configuration.
func buildOrchestrator(ctx context.Context, cfg *config.Config) (*pipeline.Orchestrator, error) {
	if err := cfg.RequireGeminiKey(); err != nil {
		return nil, err
	}

	client, err := llm.NewClient(ctx, cfg.AI.Gemini)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return pipeline.New(client, cfg.Content), nil
}
