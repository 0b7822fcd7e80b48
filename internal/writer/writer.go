package writer

import (
	"context"
	"fmt"
	"strings"

	"seoforge/internal/core"
	"seoforge/internal/llm"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

const (
	// metaPreviewWords is how much of the article body seeds the meta
	// description prompt.
	metaPreviewWords = 50

	articleSystemPromptTemplate = `You are an expert SEO content writer. Write a %s that is informative, engaging, and optimized for search engines.

Guidelines:
- Target length: ~%d words
- Use keywords naturally (not stuffed)
- Include H2 and H3 headings
- Write in a conversational yet professional tone
- Include actionable insights
- Use short paragraphs for readability`

	articleUserPromptTemplate = `Title: %s
Target Keywords: %s
Content Type: %s

Write a comprehensive article following SEO best practices.
Include:
1. Engaging introduction
2. Well-structured body with subheadings
3. Practical examples or tips
4. Strong conclusion with call-to-action`

	metaSystemPrompt = `Write a compelling meta description (150-160 characters) that summarizes the article and encourages clicks.`

	metaUserPromptTemplate = `Title: %s
Content preview: %s

Write meta description:`
)

// Stage writes a full article for a title and keyword set, then derives word
// count, readability and a heuristic SEO score locally.
type Stage struct {
	generator llm.Generator
}

// NewStage creates a writing stage backed by the given generator.
func NewStage(generator llm.Generator) *Stage {
	return &Stage{generator: generator}
}

// Execute writes one article. The target length is a prompt hint only; the
// returned text is not checked against it.
func (s *Stage) Execute(ctx context.Context, title string, keywords []string, contentType string, targetLength int) (core.Article, error) {
	content, err := s.writeArticle(ctx, title, keywords, contentType, targetLength)
	if err != nil {
		return core.Article{}, fmt.Errorf("failed to write article %q: %w", title, err)
	}

	metaDescription, err := s.generateMetaDescription(ctx, title, content)
	if err != nil {
		return core.Article{}, fmt.Errorf("failed to generate meta description for %q: %w", title, err)
	}

	return core.Article{
		ID:               uuid.NewString(),
		Title:            title,
		MetaDescription:  metaDescription,
		Content:          content,
		Keywords:         keywords,
		WordCount:        len(strings.Fields(content)),
		ReadabilityScore: FleschReadingEase(content),
		SEOScore:         SEOScore(content, keywords),
	}, nil
}

func (s *Stage) writeArticle(ctx context.Context, title string, keywords []string, contentType string, targetLength int) (string, error) {
	systemPrompt := fmt.Sprintf(articleSystemPromptTemplate, contentType, targetLength)
	userPrompt := fmt.Sprintf(articleUserPromptTemplate, title, strings.Join(keywords, ", "), contentType)

	return s.generator.Generate(ctx, systemPrompt, userPrompt)
}

func (s *Stage) generateMetaDescription(ctx context.Context, title, content string) (string, error) {
	words := strings.Fields(content)
	if len(words) > metaPreviewWords {
		words = words[:metaPreviewWords]
	}
	userPrompt := fmt.Sprintf(metaUserPromptTemplate, title, strings.Join(words, " "))

	response, err := s.generator.Generate(ctx, metaSystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(response), nil
}

// SEOScore computes the heuristic 0-100 score for content against a keyword
// set: 20 points per keyword whose density falls in the optimal 1-3% band, 10
// for present-but-off-band keywords, plus 10 for an H2 heading and 10 for
// 1000+ words. The total is capped at 100 whatever the keyword count.
func SEOScore(content string, keywords []string) float64 {
	totalWords := len(strings.Fields(content))
	if totalWords == 0 {
		return 0
	}
	contentLower := strings.ToLower(content)

	score := 0.0
	for _, keyword := range keywords {
		count := strings.Count(contentLower, strings.ToLower(keyword))
		density := float64(count) / float64(totalWords)

		switch {
		case density >= 0.01 && density <= 0.03:
			score += 20
		case density > 0:
			score += 10
		}
	}

	if HasH2Heading(content) {
		score += 10
	}
	if totalWords >= 1000 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// HasH2Heading reports whether the content carries an H2-level heading, in
// either markdown ("##") or HTML form.
func HasH2Heading(content string) bool {
	if strings.Contains(content, "##") {
		return true
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return false
	}
	return doc.Find("h2").Length() > 0
}

// KeywordDensity maps every keyword to its density in the content as a
// percentage of total words. Absent keywords map to zero.
func KeywordDensity(content string, keywords []string) map[string]float64 {
	totalWords := len(strings.Fields(content))
	contentLower := strings.ToLower(content)

	density := make(map[string]float64, len(keywords))
	for _, keyword := range keywords {
		if totalWords == 0 {
			density[keyword] = 0
			continue
		}
		count := strings.Count(contentLower, strings.ToLower(keyword))
		density[keyword] = float64(count) / float64(totalWords) * 100
	}
	return density
}
