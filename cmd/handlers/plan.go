package handlers

import (
	"fmt"
	"os"

	"seoforge/internal/core"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewPlanCmd creates the plan command: business profile in, content plan out.
func NewPlanCmd() *cobra.Command {
	var outputFile string
	var days int

	cmd := &cobra.Command{
		Use:   "plan [profile.yaml]",
		Short: "Generate a content plan from a business profile",
		Long: `Runs market research, SEO strategy and content planning for the
business described in the profile file and prints the resulting plan as YAML.

Profile file format:
  business_type: SaaS
  product_service: CRM software for small teams
  target_audience: startup founders
  niche_keywords: [crm, sales pipeline]
  tone: professional
  preferred_length: 1500`,
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

			return writeYAML(bundle, outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the plan to a file instead of stdout")
	cmd.Flags().IntVar(&days, "days", 0, "calendar horizon in days (default from config)")

	return cmd
}

// loadProfile reads a business profile file and fills in the configured
// defaults for tone and article length.
func loadProfile(path, defaultTone string, defaultLength int) (core.BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.BusinessProfile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile core.BusinessProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return core.BusinessProfile{}, fmt.Errorf("failed to parse profile file: %w", err)
	}

	if profile.Tone == "" {
		profile.Tone = defaultTone
	}
	if profile.PreferredLength == 0 {
		profile.PreferredLength = defaultLength
	}
	return profile, nil
}

// writeYAML marshals v to the output file, or stdout when no file is given.
func writeYAML(v any, outputFile string) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if outputFile == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	fmt.Printf("Wrote %s\n", outputFile)
	return nil
}
