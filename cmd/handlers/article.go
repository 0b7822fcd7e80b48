package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seoforge/internal/core"

	"github.com/spf13/cobra"
)

// NewArticleCmd creates the article command: one title in, one scored article
// bundle out.
func NewArticleCmd() *cobra.Command {
	var title string
	var keywordsFlag string
	var contentType string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "article",
		Short: "Write and score a single article",
		Long: `Writes a full article for the given title and keywords, reviews its
quality and estimates its search performance. The article is written as
markdown with the quality report and estimate appended as a review section.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			keywords := splitKeywordsFlag(keywordsFlag)
			if title == "" || len(keywords) == 0 {
				return fmt.Errorf("both --title and --keywords are required")
			}

			ctx := cmd.Context()
			orchestrator, err := buildOrchestrator(ctx, cfg)
			if err != nil {
				return err
			}

			bundle, err := orchestrator.GenerateArticle(ctx, title, keywords, contentType)
			if err != nil {
				return fmt.Errorf("article generation failed: %w", err)
			}

			if outputDir == "" {
				outputDir = cfg.App.OutputDir
			}
			path, err := writeArticleBundle(bundle, outputDir)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "article title (required)")
	cmd.Flags().StringVar(&keywordsFlag, "keywords", "", "comma-separated target keywords (required)")
	cmd.Flags().StringVar(&contentType, "type", "", "content type (default from config)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")

	return cmd
}

func splitKeywordsFlag(flag string) []string {
	if strings.TrimSpace(flag) == "" {
		return nil
	}
	parts := strings.Split(flag, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// writeArticleBundle renders the bundle as a markdown file and returns the
// path written.
func writeArticleBundle(bundle *core.ArticleBundle, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, slugify(bundle.Article.Title)+".md")
	if err := os.WriteFile(path, []byte(renderArticleMarkdown(bundle)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

func renderArticleMarkdown(bundle *core.ArticleBundle) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", bundle.Article.Title))
	if bundle.ScheduledDate != "" {
		b.WriteString(fmt.Sprintf("*Scheduled: %s*\n\n", bundle.ScheduledDate))
	}
	b.WriteString(fmt.Sprintf("> %s\n\n", bundle.Article.MetaDescription))
	b.WriteString(bundle.Article.Content)
	b.WriteString("\n\n---\n\n")

	b.WriteString("## Review\n\n")
	b.WriteString(fmt.Sprintf("- Words: %d\n", bundle.Article.WordCount))
	b.WriteString(fmt.Sprintf("- Readability: %.1f\n", bundle.Article.ReadabilityScore))
	b.WriteString(fmt.Sprintf("- SEO score: %.0f/100\n", bundle.Article.SEOScore))
	b.WriteString(fmt.Sprintf("- Grammar: %.0f/100\n", bundle.QualityReport.GrammarScore))
	b.WriteString(fmt.Sprintf("- Plagiarism risk: %s\n", bundle.QualityReport.PlagiarismRisk))
	b.WriteString(fmt.Sprintf("- Estimated ranking: %d\n", bundle.PerformanceEstimate.EstimatedRanking))
	b.WriteString(fmt.Sprintf("- Traffic potential: %d visits/month\n", bundle.PerformanceEstimate.TrafficPotential))
	b.WriteString(fmt.Sprintf("- Competition: %s\n", bundle.PerformanceEstimate.CompetitionLevel))
	b.WriteString(fmt.Sprintf("- Success probability: %.0f%%\n", bundle.PerformanceEstimate.SuccessProbability))

	if len(bundle.QualityReport.Suggestions) > 0 {
		b.WriteString("\n### Suggestions\n\n")
		for _, s := range bundle.QualityReport.Suggestions {
			b.WriteString(fmt.Sprintf("- %s\n", s))
		}
	}

	return b.String()
}

// slugify turns a title into a safe lowercase filename.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "article"
	}
	return slug
}
