package estimate

import (
	"context"
	"fmt"
	"strings"

	"seoforge/internal/core"
	"seoforge/internal/llm"
	"seoforge/internal/review"
)

const (
	// maxSuccessProbability caps the reported probability.
	maxSuccessProbability = 95.0

	competitionSystemPrompt = `Assess the competition level for these keywords in SEO. Return: 'Low', 'Medium', or 'High'.`

	competitionUserPromptTemplate = `Keywords: %s`
)

// rankingBuckets maps composite-score thresholds to position estimates.
var rankingBuckets = []struct {
	threshold float64
	position  int
}{
	{90, 1},
	{80, 3},
	{70, 7},
	{60, 15},
}

// fallbackRanking applies below every threshold.
const fallbackRanking = 25

// Stage estimates how an article is likely to perform: a ranking bucket, a
// traffic figure, a competition label and a success probability.
type Stage struct {
	generator llm.Generator
}

// NewStage creates an estimation stage backed by the given generator.
func NewStage(generator llm.Generator) *Stage {
	return &Stage{generator: generator}
}

// Execute estimates performance from the article and its quality report. Only
// the competition assessment calls the model; everything else is a pure
// function of the inputs.
func (s *Stage) Execute(ctx context.Context, article core.Article, report core.QualityReport) (core.PerformanceEstimate, error) {
	competition, err := s.assessCompetition(ctx, article.Keywords)
	if err != nil {
		return core.PerformanceEstimate{}, fmt.Errorf("failed to assess competition: %w", err)
	}

	ranking := EstimateRanking(article, report)

	return core.PerformanceEstimate{
		EstimatedRanking:   ranking,
		TrafficPotential:   EstimateTraffic(article),
		CompetitionLevel:   competition,
		SuccessProbability: SuccessProbability(article, report, ranking),
	}, nil
}

// EstimateRanking buckets a weighted composite of the article's scores into a
// position estimate. Keyword densities are summed, not averaged, so articles
// targeting many keywords pay a steeper penalty; that behavior is pinned by
// tests.
func EstimateRanking(article core.Article, report core.QualityReport) int {
	densitySum := 0.0
	for _, d := range report.KeywordDensity {
		densitySum += d
	}

	composite := article.SEOScore*0.4 +
		report.GrammarScore*0.2 +
		report.ReadabilityScore*0.2 +
		(100-densitySum)*0.2

	for _, bucket := range rankingBuckets {
		if composite >= bucket.threshold {
			return bucket.position
		}
	}
	return fallbackRanking
}

// EstimateTraffic derives a monthly-visit figure from length scaled by the
// SEO score, truncated to an integer.
func EstimateTraffic(article core.Article) int {
	return int(float64(article.WordCount*2) * article.SEOScore / 100)
}

// SuccessProbability averages the article's three quality scores, discounts
// by how deep the estimated ranking sits, and caps the result at 95. It is a
// pure function of its numeric inputs.
func SuccessProbability(article core.Article, report core.QualityReport, ranking int) float64 {
	quality := (article.SEOScore + report.GrammarScore + report.ReadabilityScore) / 3

	rankingFactor := (51.0 - float64(ranking)) / 50.0
	if rankingFactor < 0 {
		rankingFactor = 0
	}

	probability := quality / 100 * rankingFactor * 100
	if probability > maxSuccessProbability {
		probability = maxSuccessProbability
	}
	// A strongly negative readability score can drag the average below zero.
	if probability < 0 {
		probability = 0
	}
	return probability
}

func (s *Stage) assessCompetition(ctx context.Context, keywords []string) (string, error) {
	userPrompt := fmt.Sprintf(competitionUserPromptTemplate, strings.Join(keywords, ", "))

	response, err := s.generator.Generate(ctx, competitionSystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return review.ParseRiskLabel(response, core.RiskMedium), nil
}
