package pipeline

import (
	"context"
	"strings"

	"seoforge/internal/config"
	"seoforge/internal/core"
	"seoforge/internal/estimate"
	"seoforge/internal/llm"
	"seoforge/internal/logger"
	"seoforge/internal/planner"
	"seoforge/internal/research"
	"seoforge/internal/review"
	"seoforge/internal/strategy"
	"seoforge/internal/writer"
)

// Orchestrator chains the pipeline stages. Plan generation runs
// research→strategy→planning; article generation runs
// writing→review→estimation. Stages run strictly in sequence, each consuming
// the immutable output of the one before it.
type Orchestrator struct {
	research *research.Stage
	strategy *strategy.Stage
	planner  *planner.Stage
	writer   *writer.Stage
	review   *review.Stage
	estimate *estimate.Stage

	content config.Content
}

// New builds an orchestrator with fresh stage instances over the given
// generator. Concurrent requests get isolation for free: stages hold no
// mutable state, so safety reduces to the generator being concurrency-safe.
func New(generator llm.Generator, content config.Content) *Orchestrator {
	return &Orchestrator{
		research: research.NewStage(generator),
		strategy: strategy.NewStage(generator),
		planner:  planner.NewStage(),
		writer:   writer.NewStage(generator),
		review:   review.NewStage(generator),
		estimate: estimate.NewStage(generator),
		content:  content,
	}
}

// GeneratePlan runs the plan-generation flow for a business profile.
func (o *Orchestrator) GeneratePlan(ctx context.Context, profile core.BusinessProfile) (*core.PlanBundle, error) {
	logger.Info("generating content plan", "business_type", profile.BusinessType)

	researchResult, err := o.research.Execute(ctx, profile)
	if err != nil {
		return nil, err
	}

	seoStrategy, err := o.strategy.Execute(ctx, researchResult)
	if err != nil {
		return nil, err
	}

	plan := o.planner.Execute(seoStrategy, o.content.CalendarDays)

	logger.Info("content plan ready",
		"keywords", len(researchResult.TrendingKeywords),
		"titles", len(seoStrategy.Titles),
		"scheduled", len(plan.Schedule))

	return &core.PlanBundle{
		Research: researchResult,
		Strategy: seoStrategy,
		Plan:     plan,
	}, nil
}

// GenerateArticle runs the article-generation flow for a single title.
func (o *Orchestrator) GenerateArticle(ctx context.Context, title string, keywords []string, contentType string) (*core.ArticleBundle, error) {
	if contentType == "" {
		contentType = o.content.DefaultContentType
	}

	logger.Info("generating article", "title", title, "content_type", contentType)

	article, err := o.writer.Execute(ctx, title, keywords, contentType, o.content.DefaultArticleLength)
	if err != nil {
		return nil, err
	}

	report, err := o.review.Execute(ctx, article)
	if err != nil {
		return nil, err
	}

	performance, err := o.estimate.Execute(ctx, article, report)
	if err != nil {
		return nil, err
	}

	logger.Info("article ready",
		"title", title,
		"words", article.WordCount,
		"seo_score", article.SEOScore,
		"estimated_ranking", performance.EstimatedRanking)

	return &core.ArticleBundle{
		Article:             article,
		QualityReport:       report,
		PerformanceEstimate: performance,
	}, nil
}

// GenerateCalendarArticles generates one article bundle per schedule row,
// sequentially. A failure on any row aborts the batch.
func (o *Orchestrator) GenerateCalendarArticles(ctx context.Context, plan core.ContentPlan) ([]core.ArticleBundle, error) {
	bundles := make([]core.ArticleBundle, 0, len(plan.Schedule))
	for _, entry := range plan.Schedule {
		bundle, err := o.GenerateArticle(ctx, entry.Title, strings.Split(entry.Keywords, ", "), entry.ContentType)
		if err != nil {
			return nil, err
		}
		bundle.ScheduledDate = entry.Date
		bundles = append(bundles, *bundle)
	}
	return bundles, nil
}

// EvaluateArticle reviews and estimates an already-written article without
// regenerating it.
func (o *Orchestrator) EvaluateArticle(ctx context.Context, article core.Article) (core.QualityReport, core.PerformanceEstimate, error) {
	report, err := o.review.Execute(ctx, article)
	if err != nil {
		return core.QualityReport{}, core.PerformanceEstimate{}, err
	}

	performance, err := o.estimate.Execute(ctx, article, report)
	if err != nil {
		return core.QualityReport{}, core.PerformanceEstimate{}, err
	}

	return report, performance, nil
}
