package review

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"seoforge/internal/core"
	"seoforge/internal/llm"
	"seoforge/internal/writer"
)

const (
	// defaultGrammarScore stands in when the model response carries no
	// parseable number.
	defaultGrammarScore = 85.0

	// grammarSampleRunes and plagiarismSampleRunes bound how much article text
	// is pasted into the respective prompts.
	grammarSampleRunes    = 1000
	plagiarismSampleRunes = 500

	// readabilityFloor, densityCeiling and minWordCount drive the local
	// suggestion rules.
	readabilityFloor = 60.0
	densityCeiling   = 3.0
	minWordCount     = 1000

	grammarSystemPrompt = `Analyze the text for grammar, spelling, and style issues. Rate the overall quality from 0-100.`

	grammarUserPromptTemplate = `Analyze this content for grammar quality:

%s...`

	plagiarismSystemPrompt = `Assess if this content appears to be original or potentially plagiarized. Return: 'Low', 'Medium', or 'High' risk.`

	plagiarismUserPromptTemplate = `Assess plagiarism risk for:

%s...`
)

// riskLevels is the fixed scan order; the first label found in the response
// wins regardless of position.
var riskLevels = []string{core.RiskLow, core.RiskMedium, core.RiskHigh}

// Stage reviews a written article: model-rated grammar quality, an
// authoritative keyword density map, a plagiarism risk label and local
// improvement suggestions.
type Stage struct {
	generator llm.Generator
}

// NewStage creates a quality review stage backed by the given generator.
func NewStage(generator llm.Generator) *Stage {
	return &Stage{generator: generator}
}

// Execute reviews the article. Malformed model output never fails the review;
// each parse falls back to its documented default.
func (s *Stage) Execute(ctx context.Context, article core.Article) (core.QualityReport, error) {
	grammarScore, err := s.checkGrammar(ctx, article.Content)
	if err != nil {
		return core.QualityReport{}, fmt.Errorf("failed to check grammar: %w", err)
	}

	plagiarismRisk, err := s.checkPlagiarismRisk(ctx, article.Content)
	if err != nil {
		return core.QualityReport{}, fmt.Errorf("failed to check plagiarism risk: %w", err)
	}

	return core.QualityReport{
		GrammarScore:     grammarScore,
		ReadabilityScore: article.ReadabilityScore,
		KeywordDensity:   writer.KeywordDensity(article.Content, article.Keywords),
		PlagiarismRisk:   plagiarismRisk,
		Suggestions:      Suggestions(article),
	}, nil
}

func (s *Stage) checkGrammar(ctx context.Context, content string) (float64, error) {
	userPrompt := fmt.Sprintf(grammarUserPromptTemplate, truncateRunes(content, grammarSampleRunes))

	response, err := s.generator.Generate(ctx, grammarSystemPrompt, userPrompt)
	if err != nil {
		return 0, err
	}
	return ParseGrammarScore(response), nil
}

func (s *Stage) checkPlagiarismRisk(ctx context.Context, content string) (string, error) {
	userPrompt := fmt.Sprintf(plagiarismUserPromptTemplate, truncateRunes(content, plagiarismSampleRunes))

	response, err := s.generator.Generate(ctx, plagiarismSystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return ParseRiskLabel(response, core.RiskLow), nil
}

// ParseGrammarScore extracts the last whitespace-delimited token of the
// response that looks numeric (digits and dots only) and clamps it to
// [0,100]. Anything else, including a token with two dots, yields the 85.0
// default.
func ParseGrammarScore(response string) float64 {
	tokens := strings.Fields(response)
	for i := len(tokens) - 1; i >= 0; i-- {
		if !isNumericToken(tokens[i]) {
			continue
		}
		score, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return defaultGrammarScore
		}
		return clamp(score, 0, 100)
	}
	return defaultGrammarScore
}

// isNumericToken reports whether the token is non-empty digits once dots are
// ignored.
func isNumericToken(token string) bool {
	stripped := strings.ReplaceAll(token, ".", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseRiskLabel scans the response case-insensitively for the labels Low,
// Medium, High in that fixed order and returns the first one present, or the
// fallback when none match.
func ParseRiskLabel(response, fallback string) string {
	responseLower := strings.ToLower(response)
	for _, level := range riskLevels {
		if strings.Contains(responseLower, strings.ToLower(level)) {
			return level
		}
	}
	return fallback
}

// Suggestions applies the local rule list to the article. No generation call;
// keyword suggestions follow the article's keyword order.
func Suggestions(article core.Article) []string {
	var suggestions []string

	if article.ReadabilityScore < readabilityFloor {
		suggestions = append(suggestions, "Consider simplifying sentences for better readability")
	}

	density := writer.KeywordDensity(article.Content, article.Keywords)
	for _, keyword := range article.Keywords {
		if density[keyword] > densityCeiling {
			suggestions = append(suggestions,
				fmt.Sprintf("Reduce keyword density for '%s' - currently %.1f%%", keyword, density[keyword]))
		}
	}

	if article.WordCount < minWordCount {
		suggestions = append(suggestions, "Consider expanding content for better SEO performance")
	}

	return suggestions
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
