package planner

import (
	"strings"
	"time"

	"seoforge/internal/core"
)

// scheduleTypes is the fixed rotation assigned to calendar days by offset.
var scheduleTypes = []string{"how-to", "listicle", "guide", "comparison", "tutorial"}

// planContentTypes is the fixed list of content formats a plan advertises.
var planContentTypes = []string{"blog_post", "how_to_guide", "listicle", "product_review", "comparison"}

const (
	// dailyKeywordCount is how many primary keywords each schedule row carries.
	// Every day repeats the same two keywords; a smarter rotation is a known
	// candidate for a future change.
	dailyKeywordCount = 2

	// keywordsPerTitle bounds the keyword subset mapped to each title.
	keywordsPerTitle = 3

	statusPlanned = "planned"
)

// Stage builds a dated content calendar from an SEO strategy. It makes no
// generation calls; everything here is deterministic given the clock.
type Stage struct {
	now func() time.Time
}

// NewStage creates a planning stage using the wall clock.
func NewStage() *Stage {
	return &Stage{now: time.Now}
}

// NewStageAt creates a planning stage with a fixed clock, for tests.
func NewStageAt(now func() time.Time) *Stage {
	return &Stage{now: now}
}

// Execute builds a plan covering at most days entries. Titles beyond the
// horizon are dropped; a horizon beyond the title list is shortened. Neither
// is an error.
func (s *Stage) Execute(strategy core.SEOStrategy, days int) core.ContentPlan {
	return core.ContentPlan{
		HorizonDays:    days,
		Schedule:       s.buildSchedule(strategy, days),
		KeywordMapping: mapKeywordsToTitles(strategy),
		ContentTypes:   append([]string{}, planContentTypes...),
	}
}

func (s *Stage) buildSchedule(strategy core.SEOStrategy, days int) []core.ScheduleEntry {
	entries := min(days, len(strategy.Titles))
	start := s.now()

	dailyKeywords := strategy.PrimaryKeywords
	if len(dailyKeywords) > dailyKeywordCount {
		dailyKeywords = dailyKeywords[:dailyKeywordCount]
	}
	keywords := strings.Join(dailyKeywords, ", ")

	schedule := make([]core.ScheduleEntry, 0, entries)
	for i := 0; i < entries; i++ {
		schedule = append(schedule, core.ScheduleEntry{
			Date:        start.AddDate(0, 0, i).Format("2006-01-02"),
			Title:       strategy.Titles[i],
			Keywords:    keywords,
			ContentType: scheduleTypes[i%len(scheduleTypes)],
			Status:      statusPlanned,
		})
	}
	return schedule
}

// mapKeywordsToTitles assigns the i-th title the slice [2i, 2i+3) of the
// concatenated primary+long-tail list. Titles past the end of the list get
// fewer keywords, possibly none.
func mapKeywordsToTitles(strategy core.SEOStrategy) map[string][]string {
	all := append(append([]string{}, strategy.PrimaryKeywords...), strategy.LongTailKeywords...)

	mapping := make(map[string][]string, len(strategy.Titles))
	for i, title := range strategy.Titles {
		lo := min(i*dailyKeywordCount, len(all))
		hi := min(lo+keywordsPerTitle, len(all))
		mapping[title] = all[lo:hi]
	}
	return mapping
}
