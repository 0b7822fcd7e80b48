package strategy

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"seoforge/internal/core"
	"seoforge/internal/llm"
	"seoforge/internal/research"
)

const (
	// maxPrimaryKeywords caps how many trending keywords become primary ones.
	maxPrimaryKeywords = 5

	// maxSeedKeywords caps how many keywords seed the title prompt.
	maxSeedKeywords = 8

	// maxLinkHints caps the locally derived internal link suggestions.
	maxLinkHints = 3

	longTailSystemPrompt = `Generate long-tail keyword variations that are specific and have commercial intent. Focus on question-based and location-based variations.`

	longTailUserPromptTemplate = `Primary Keywords: %s

Generate 8 long-tail keyword variations (3-5 words each).
Return as comma-separated list.`

	titleSystemPrompt = `Create compelling, SEO-optimized article titles that include target keywords naturally. Make them click-worthy but not clickbait.`

	titleUserPromptTemplate = `Keywords to target: %s

Generate 5 article titles that incorporate these keywords naturally.
Make them engaging and SEO-friendly.
Return as numbered list.`

	metaSystemPrompt = `Write compelling meta descriptions (150-160 characters) that encourage clicks while accurately describing the content.`

	metaUserPromptTemplate = `Write a meta description for this article title: %s`
)

// Stage turns research output into an SEO strategy: primary keyword selection,
// long-tail variants, title suggestions, meta descriptions and link hints.
type Stage struct {
	generator llm.Generator
}

// NewStage creates a strategy stage backed by the given generator.
func NewStage(generator llm.Generator) *Stage {
	return &Stage{generator: generator}
}

// Execute runs the strategy stage over the research result. Meta descriptions
// cost one generation call per title, so the call count scales with the title
// list.
func (s *Stage) Execute(ctx context.Context, researchResult core.ResearchResult) (core.SEOStrategy, error) {
	primary := SelectPrimaryKeywords(researchResult)

	longTail, err := s.generateLongTailKeywords(ctx, primary)
	if err != nil {
		return core.SEOStrategy{}, fmt.Errorf("failed to generate long-tail keywords: %w", err)
	}

	titles, err := s.suggestTitles(ctx, primary, longTail)
	if err != nil {
		return core.SEOStrategy{}, fmt.Errorf("failed to suggest titles: %w", err)
	}

	metaDescriptions, err := s.generateMetaDescriptions(ctx, titles)
	if err != nil {
		return core.SEOStrategy{}, fmt.Errorf("failed to generate meta descriptions: %w", err)
	}

	return core.SEOStrategy{
		PrimaryKeywords:   primary,
		LongTailKeywords:  longTail,
		Titles:            titles,
		MetaDescriptions:  metaDescriptions,
		InternalLinkHints: suggestInternalLinks(primary),
	}, nil
}

// SelectPrimaryKeywords sorts the trending keywords by descending search
// volume (stable, so ties keep their generated order) and takes the top 5.
func SelectPrimaryKeywords(researchResult core.ResearchResult) []string {
	sorted := make([]string, len(researchResult.TrendingKeywords))
	copy(sorted, researchResult.TrendingKeywords)

	sort.SliceStable(sorted, func(i, j int) bool {
		return researchResult.SearchVolume[sorted[i]] > researchResult.SearchVolume[sorted[j]]
	})

	if len(sorted) > maxPrimaryKeywords {
		sorted = sorted[:maxPrimaryKeywords]
	}
	return sorted
}

func (s *Stage) generateLongTailKeywords(ctx context.Context, primary []string) ([]string, error) {
	userPrompt := fmt.Sprintf(longTailUserPromptTemplate, strings.Join(primary, ", "))

	response, err := s.generator.Generate(ctx, longTailSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return research.ParseKeywordList(response), nil
}

func (s *Stage) suggestTitles(ctx context.Context, primary, longTail []string) ([]string, error) {
	seeds := append(append([]string{}, primary...), longTail...)
	if len(seeds) > maxSeedKeywords {
		seeds = seeds[:maxSeedKeywords]
	}

	userPrompt := fmt.Sprintf(titleUserPromptTemplate, strings.Join(seeds, ", "))

	response, err := s.generator.Generate(ctx, titleSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return ParseTitleList(response), nil
}

// generateMetaDescriptions makes one call per title so the result stays
// index-aligned with the title list.
func (s *Stage) generateMetaDescriptions(ctx context.Context, titles []string) ([]string, error) {
	metaDescriptions := make([]string, 0, len(titles))
	for _, title := range titles {
		userPrompt := fmt.Sprintf(metaUserPromptTemplate, title)

		response, err := s.generator.Generate(ctx, metaSystemPrompt, userPrompt)
		if err != nil {
			return nil, err
		}
		metaDescriptions = append(metaDescriptions, strings.TrimSpace(response))
	}
	return metaDescriptions, nil
}

// suggestInternalLinks derives anchor-text hints locally, no generation call.
func suggestInternalLinks(keywords []string) []string {
	if len(keywords) > maxLinkHints {
		keywords = keywords[:maxLinkHints]
	}
	hints := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		hints = append(hints, fmt.Sprintf("Learn more about %s", kw))
	}
	return hints
}

// ParseTitleList parses a numbered-list model response into titles. Blank
// lines are dropped; everything after the first ". " on a line is kept, so
// "3. How to X" becomes "How to X" and an unnumbered line passes through.
func ParseTitleList(response string) []string {
	var titles []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, rest, found := strings.Cut(line, ". "); found {
			line = rest
		}
		titles = append(titles, line)
	}
	return titles
}
