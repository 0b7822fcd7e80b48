package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewCalendarCmd creates the calendar command: profile in, a full calendar of
// scored articles out.
func NewCalendarCmd() *cobra.Command {
	var outputDir string
	var days int

	cmd := &cobra.Command{
		Use:   "calendar [profile.yaml]",
		Short: "Generate every article on a content calendar",
		Long: `Generates a content plan for the business profile, then writes and
scores one article per scheduled day. Each article is written to the output
directory as markdown, and the plan itself as plan.yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if days > 0 {
				cfg.Content.CalendarDays = days
			}

			profile, err := loadProfile(args[0], cfg.Content.DefaultTone, cfg.Content.DefaultArticleLength)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			orchestrator, err := buildOrchestrator(ctx, cfg)
			if err != nil {
				return err
			}

			bundle, err := orchestrator.GeneratePlan(ctx, profile)
			if err != nil {
				return fmt.Errorf("plan generation failed: %w", err)
			}

			if outputDir == "" {
				outputDir = cfg.App.OutputDir
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			articles, err := orchestrator.GenerateCalendarArticles(ctx, bundle.Plan)
			if err != nil {
				return fmt.Errorf("calendar generation failed: %w", err)
			}

			for i := range articles {
				path, err := writeArticleBundle(&articles[i], outputDir)
				if err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", path)
			}

			return writeYAML(bundle, filepath.Join(outputDir, "plan.yaml"))
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	cmd.Flags().IntVar(&days, "days", 0, "calendar horizon in days (default from config)")

	return cmd
}
