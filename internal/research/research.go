package research

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"seoforge/internal/core"
	"seoforge/internal/llm"
)

const (
	// Volume bounds for the synthetic search-volume stub. A real SEO data API
	// would replace this.
	minSearchVolume = 100
	maxSearchVolume = 5000

	// stubDifficulty is assigned to every keyword until difficulty comes from
	// a real data source.
	stubDifficulty = 0.5

	keywordSystemPrompt = `You are a market research expert. Generate trending keywords related to the given business information. Focus on long-tail keywords with commercial intent.`

	keywordUserPromptTemplate = `Business Type: %s
Product/Service: %s
Target Audience: %s
Niche Keywords: %s

Generate 10 trending keywords that would be valuable for SEO content.
Return as a comma-separated list.`

	competitorSystemPrompt = `You are analyzing competitors for SEO strategy. Provide insights about what competitors might be doing well.`

	competitorUserPromptTemplate = `Business: %s - %s

Provide 3 competitor insights in the format:
1. Strategy: [strategy description]
2. Content Gap: [content opportunity]
3. Keyword Focus: [keyword strategy]`
)

// insightTypes are zipped positionally with the first three response lines,
// whatever those lines actually say.
var insightTypes = []string{core.InsightStrategy, core.InsightContentGap, core.InsightKeywordFocus}

// Stage produces trending keyword candidates, competitor insight snippets and
// synthetic search metrics for a business profile.
type Stage struct {
	generator llm.Generator
}

// NewStage creates a market research stage backed by the given generator.
func NewStage(generator llm.Generator) *Stage {
	return &Stage{generator: generator}
}

// Execute runs the research stage for the given business profile.
func (s *Stage) Execute(ctx context.Context, profile core.BusinessProfile) (core.ResearchResult, error) {
	keywords, err := s.generateTrendingKeywords(ctx, profile)
	if err != nil {
		return core.ResearchResult{}, fmt.Errorf("failed to generate trending keywords: %w", err)
	}

	insights, err := s.analyzeCompetitors(ctx, profile)
	if err != nil {
		return core.ResearchResult{}, fmt.Errorf("failed to analyze competitors: %w", err)
	}

	volumes := syntheticSearchVolumes(keywords)
	difficulty := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		difficulty[kw] = stubDifficulty
	}

	return core.ResearchResult{
		TrendingKeywords:   keywords,
		CompetitorInsights: insights,
		SearchVolume:       volumes,
		Difficulty:         difficulty,
	}, nil
}

func (s *Stage) generateTrendingKeywords(ctx context.Context, profile core.BusinessProfile) ([]string, error) {
	userPrompt := fmt.Sprintf(keywordUserPromptTemplate,
		profile.BusinessType,
		profile.ProductService,
		profile.TargetAudience,
		strings.Join(profile.NicheKeywords, ", "))

	response, err := s.generator.Generate(ctx, keywordSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return ParseKeywordList(response), nil
}

func (s *Stage) analyzeCompetitors(ctx context.Context, profile core.BusinessProfile) ([]core.CompetitorInsight, error) {
	userPrompt := fmt.Sprintf(competitorUserPromptTemplate, profile.BusinessType, profile.ProductService)

	response, err := s.generator.Generate(ctx, competitorSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return ParseCompetitorInsights(response), nil
}

// ParseKeywordList splits a comma-separated model response into trimmed
// keywords. Empty tokens are kept; a response with trailing commas yields
// empty-string keywords, matching the documented behavior.
func ParseKeywordList(response string) []string {
	parts := strings.Split(response, ",")
	keywords := make([]string, len(parts))
	for i, part := range parts {
		keywords[i] = strings.TrimSpace(part)
	}
	return keywords
}

// ParseCompetitorInsights zips the first three response lines with the fixed
// insight types. Fewer lines produce fewer insights, never an error.
func ParseCompetitorInsights(response string) []core.CompetitorInsight {
	lines := strings.Split(response, "\n")
	if len(lines) > len(insightTypes) {
		lines = lines[:len(insightTypes)]
	}

	insights := make([]core.CompetitorInsight, 0, len(lines))
	for i, line := range lines {
		insights = append(insights, core.CompetitorInsight{
			InsightType: insightTypes[i],
			Description: strings.TrimSpace(line),
		})
	}
	return insights
}

// syntheticSearchVolumes fabricates a plausible-looking volume per keyword.
func syntheticSearchVolumes(keywords []string) map[string]int {
	volumes := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		volumes[kw] = minSearchVolume + rand.IntN(maxSearchVolume-minSearchVolume+1)
	}
	return volumes
}
