package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"seoforge/internal/core"
)

// mockGenerator implements llm.Generator for testing
type mockGenerator struct {
	responses  map[string]string
	callCount  int
	shouldFail bool
}

func (m *mockGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++
	if m.shouldFail {
		return "", errors.New("mock generation error")
	}
	for marker, response := range m.responses {
		if strings.Contains(userPrompt, marker) || strings.Contains(systemPrompt, marker) {
			return response, nil
		}
	}
	return "default response", nil
}

func TestParseKeywordList(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{
			name:     "clean comma-separated list",
			response: "crm software, best crm for startups, crm pricing",
			expected: []string{"crm software", "best crm for startups", "crm pricing"},
		},
		{
			name:     "whitespace around tokens",
			response: "  crm software ,\n best crm  ",
			expected: []string{"crm software", "best crm"},
		},
		{
			name:     "trailing comma keeps empty token",
			response: "crm software, crm pricing,",
			expected: []string{"crm software", "crm pricing", ""},
		},
		{
			name:     "single keyword no comma",
			response: "crm software",
			expected: []string{"crm software"},
		},
		{
			name:     "empty response yields one empty keyword",
			response: "",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeywordList(tt.response)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d keywords %v, expected %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("keyword %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseCompetitorInsights(t *testing.T) {
	t.Run("three lines get the fixed types in order", func(t *testing.T) {
		response := "1. Strategy: publish weekly\n2. Content Gap: no pricing pages\n3. Keyword Focus: long-tail"
		insights := ParseCompetitorInsights(response)

		if len(insights) != 3 {
			t.Fatalf("expected 3 insights, got %d", len(insights))
		}
		expectedTypes := []string{core.InsightStrategy, core.InsightContentGap, core.InsightKeywordFocus}
		for i, insight := range insights {
			if insight.InsightType != expectedTypes[i] {
				t.Errorf("insight %d type = %q, expected %q", i, insight.InsightType, expectedTypes[i])
			}
		}
		if insights[1].Description != "2. Content Gap: no pricing pages" {
			t.Errorf("description not preserved: %q", insights[1].Description)
		}
	})

	t.Run("fewer lines produce fewer insights", func(t *testing.T) {
		insights := ParseCompetitorInsights("only one line")
		if len(insights) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(insights))
		}
		if insights[0].InsightType != core.InsightStrategy {
			t.Errorf("expected first type %q, got %q", core.InsightStrategy, insights[0].InsightType)
		}
	})

	t.Run("lines are zipped positionally regardless of content", func(t *testing.T) {
		insights := ParseCompetitorInsights("unrelated\nlines\nentirely")
		if len(insights) != 3 {
			t.Fatalf("expected 3 insights, got %d", len(insights))
		}
		if insights[2].InsightType != core.InsightKeywordFocus {
			t.Errorf("third insight type = %q", insights[2].InsightType)
		}
	})

	t.Run("extra lines are ignored", func(t *testing.T) {
		insights := ParseCompetitorInsights("a\nb\nc\nd\ne")
		if len(insights) != 3 {
			t.Fatalf("expected 3 insights, got %d", len(insights))
		}
	})
}

func TestExecute(t *testing.T) {
	mock := &mockGenerator{responses: map[string]string{
		"trending keywords":  "crm software, crm pricing, best crm, crm comparison, crm reviews, free crm, crm demo, crm features, crm migration, crm integrations",
		"competitor insights": "1. Strategy: weekly posts\n2. Content Gap: comparisons\n3. Keyword Focus: branded terms",
	}}
	stage := NewStage(mock)

	profile := core.BusinessProfile{
		BusinessType:   "SaaS",
		ProductService: "CRM software",
		TargetAudience: "startup founders",
		NicheKeywords:  []string{"crm"},
	}

	result, err := stage.Execute(context.Background(), profile)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.TrendingKeywords) != 10 {
		t.Errorf("expected 10 keywords, got %d", len(result.TrendingKeywords))
	}
	if len(result.CompetitorInsights) != 3 {
		t.Errorf("expected 3 insights, got %d", len(result.CompetitorInsights))
	}
	if mock.callCount != 2 {
		t.Errorf("expected 2 generation calls, got %d", mock.callCount)
	}

	// Volume and difficulty cover every keyword, with volumes in [100,5000]
	// and a constant 0.5 difficulty stub.
	for _, kw := range result.TrendingKeywords {
		volume, ok := result.SearchVolume[kw]
		if !ok {
			t.Fatalf("no search volume for %q", kw)
		}
		if volume < 100 || volume > 5000 {
			t.Errorf("volume for %q = %d, expected [100,5000]", kw, volume)
		}
		if result.Difficulty[kw] != 0.5 {
			t.Errorf("difficulty for %q = %v, expected 0.5", kw, result.Difficulty[kw])
		}
	}
}

func TestExecuteGenerationFailure(t *testing.T) {
	stage := NewStage(&mockGenerator{shouldFail: true})

	_, err := stage.Execute(context.Background(), core.BusinessProfile{BusinessType: "SaaS"})
	if err == nil {
		t.Fatal("expected error when generation fails")
	}
}
