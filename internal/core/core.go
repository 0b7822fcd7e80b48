package core

// BusinessProfile describes the business a content plan is generated for.
type BusinessProfile struct {
	BusinessType    string   `json:"business_type" yaml:"business_type"`       // e.g. "SaaS", "local bakery"
	ProductService  string   `json:"product_service" yaml:"product_service"`   // What the business sells
	TargetAudience  string   `json:"target_audience" yaml:"target_audience"`   // Who the content is written for
	NicheKeywords   []string `json:"niche_keywords" yaml:"niche_keywords"`     // Seed keywords supplied by the caller
	Tone            string   `json:"tone" yaml:"tone"`                         // Writing tone, defaults to "professional"
	PreferredLength int      `json:"preferred_length" yaml:"preferred_length"` // Target article length in words, defaults to 1500
}

// Insight types assigned positionally to the competitor analysis response lines.
const (
	InsightStrategy     = "strategy"
	InsightContentGap   = "content_gap"
	InsightKeywordFocus = "keyword_focus"
)

// CompetitorInsight is a single observation about what competitors are doing.
type CompetitorInsight struct {
	InsightType string `json:"insight_type"` // One of the Insight* constants
	Description string `json:"description"`  // Raw line from the model response
}

// ResearchResult holds the output of the market research stage.
type ResearchResult struct {
	TrendingKeywords   []string            `json:"trending_keywords"`   // Keyword candidates, order as generated
	CompetitorInsights []CompetitorInsight `json:"competitor_insights"` // Up to three positional insights
	SearchVolume       map[string]int      `json:"search_volume"`       // Synthetic monthly volume per keyword
	Difficulty         map[string]float64  `json:"difficulty"`          // Synthetic difficulty in [0,1] per keyword
}

// SEOStrategy holds the output of the strategy stage.
type SEOStrategy struct {
	PrimaryKeywords   []string `json:"primary_keywords"`    // At most 5, descending search volume
	LongTailKeywords  []string `json:"long_tail_keywords"`  // Generated long-tail variants
	Titles            []string `json:"titles"`              // Suggested article titles
	MetaDescriptions  []string `json:"meta_descriptions"`   // Index-aligned 1:1 with Titles
	InternalLinkHints []string `json:"internal_link_hints"` // Anchor-text suggestions, locally derived
}

// ScheduleEntry is one dated row of a content calendar.
type ScheduleEntry struct {
	Date        string `json:"date"`         // Publish date, YYYY-MM-DD
	Title       string `json:"title"`        // Article title for the day
	Keywords    string `json:"keywords"`     // Comma-joined keyword list
	ContentType string `json:"content_type"` // Drawn from the fixed rotation
	Status      string `json:"status"`       // Always "planned" at creation
}

// ContentPlan holds the output of the planning stage.
type ContentPlan struct {
	HorizonDays    int                 `json:"horizon_days"`    // Requested calendar length in days
	Schedule       []ScheduleEntry     `json:"schedule"`        // min(HorizonDays, len(titles)) entries
	KeywordMapping map[string][]string `json:"keyword_mapping"` // Title -> assigned keyword subset
	ContentTypes   []string            `json:"content_types"`   // Content formats available to the plan
}

// Article is a fully written piece of content with locally derived metrics.
type Article struct {
	ID               string   `json:"id"`                // Unique identifier for the article
	Title            string   `json:"title"`             // Article title
	MetaDescription  string   `json:"meta_description"`  // Search-result snippet text
	Content          string   `json:"content"`           // Full generated body
	Keywords         []string `json:"keywords"`          // Keywords the article targets
	WordCount        int      `json:"word_count"`        // Whitespace-delimited token count of Content
	ReadabilityScore float64  `json:"readability_score"` // Flesch reading ease of Content
	SEOScore         float64  `json:"seo_score"`         // Heuristic score in [0,100]
}

// Risk labels shared by the plagiarism and competition assessments.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// QualityReport holds the output of the quality review stage.
type QualityReport struct {
	GrammarScore     float64            `json:"grammar_score"`     // Model-rated quality in [0,100]
	ReadabilityScore float64            `json:"readability_score"` // Carried over from the article
	KeywordDensity   map[string]float64 `json:"keyword_density"`   // Percent density per article keyword
	PlagiarismRisk   string             `json:"plagiarism_risk"`   // Low, Medium or High
	Suggestions      []string           `json:"suggestions"`       // Locally derived improvement hints
}

// PerformanceEstimate holds the output of the estimation stage.
type PerformanceEstimate struct {
	EstimatedRanking   int     `json:"estimated_ranking"`   // One of 1, 3, 7, 15, 25
	TrafficPotential   int     `json:"traffic_potential"`   // Estimated monthly visits
	CompetitionLevel   string  `json:"competition_level"`   // Low, Medium or High
	SuccessProbability float64 `json:"success_probability"` // Percentage capped at 95
}

// PlanBundle is the combined output of the plan-generation flow.
type PlanBundle struct {
	Research ResearchResult `json:"research"`
	Strategy SEOStrategy    `json:"strategy"`
	Plan     ContentPlan    `json:"plan"`
}

// ArticleBundle is the combined output of the article-generation flow.
type ArticleBundle struct {
	Article             Article             `json:"article"`
	QualityReport       QualityReport       `json:"quality_report"`
	PerformanceEstimate PerformanceEstimate `json:"performance_estimate"`
	ScheduledDate       string              `json:"scheduled_date,omitempty"` // Set for calendar-driven articles
}
