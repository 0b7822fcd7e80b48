package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"seoforge/internal/config"
	"seoforge/internal/core"

	"github.com/gin-gonic/gin"
)

type mockPipeline struct {
	planBundle    *core.PlanBundle
	articleBundle *core.ArticleBundle
	report        core.QualityReport
	performance   core.PerformanceEstimate
	err           error

	gotProfile     core.BusinessProfile
	gotTitle       string
	gotKeywords    []string
	gotContentType string
}

func (m *mockPipeline) GeneratePlan(ctx context.Context, profile core.BusinessProfile) (*core.PlanBundle, error) {
	m.gotProfile = profile
	return m.planBundle, m.err
}

func (m *mockPipeline) GenerateArticle(ctx context.Context, title string, keywords []string, contentType string) (*core.ArticleBundle, error) {
	m.gotTitle = title
	m.gotKeywords = keywords
	m.gotContentType = contentType
	return m.articleBundle, m.err
}

func (m *mockPipeline) EvaluateArticle(ctx context.Context, article core.Article) (core.QualityReport, core.PerformanceEstimate, error) {
	return m.report, m.performance, m.err
}

func newTestServer(pipeline Pipeline) *Server {
	return New(pipeline, config.Server{Mode: gin.TestMode})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&mockPipeline{})

	w := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestRootEndpoint(t *testing.T) {
	srv := newTestServer(&mockPipeline{})

	w := doJSON(t, srv.Handler(), http.MethodGet, "/", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", w.Code)
	}
}

func TestGeneratePlanEndpoint(t *testing.T) {
	pipeline := &mockPipeline{
		planBundle: &core.PlanBundle{
			Research: core.ResearchResult{TrendingKeywords: []string{"crm software"}},
			Strategy: core.SEOStrategy{PrimaryKeywords: []string{"crm software"}},
			Plan:     core.ContentPlan{HorizonDays: 7},
		},
	}
	srv := newTestServer(pipeline)

	profile := core.BusinessProfile{
		BusinessType:   "SaaS",
		ProductService: "CRM software",
		TargetAudience: "startup founders",
	}
	w := doJSON(t, srv.Handler(), http.MethodPost, "/generate-plan", profile)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if pipeline.gotProfile.BusinessType != "SaaS" {
		t.Errorf("profile not passed through: %+v", pipeline.gotProfile)
	}
}

func TestGeneratePlanPipelineError(t *testing.T) {
	srv := newTestServer(&mockPipeline{err: errors.New("generation failed")})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/generate-plan", core.BusinessProfile{BusinessType: "SaaS"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, expected 500", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, expected false", body["success"])
	}
	if body["error"] != "generation failed" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestGenerateArticleEndpoint(t *testing.T) {
	pipeline := &mockPipeline{
		articleBundle: &core.ArticleBundle{
			Article: core.Article{ID: "abc", Title: "How to Choose a CRM"},
		},
	}
	srv := newTestServer(pipeline)

	w := doJSON(t, srv.Handler(), http.MethodPost, "/generate-article", map[string]any{
		"title":        "How to Choose a CRM",
		"keywords":     []string{"crm software", "best crm"},
		"content_type": "how_to_guide",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if pipeline.gotTitle != "How to Choose a CRM" {
		t.Errorf("title = %q", pipeline.gotTitle)
	}
	if len(pipeline.gotKeywords) != 2 {
		t.Errorf("keywords = %v", pipeline.gotKeywords)
	}
	if pipeline.gotContentType != "how_to_guide" {
		t.Errorf("content type = %q", pipeline.gotContentType)
	}
}

func TestGenerateArticleMissingTitle(t *testing.T) {
	srv := newTestServer(&mockPipeline{})

	w := doJSON(t, srv.Handler(), http.MethodPost, "/generate-article", map[string]any{
		"keywords": []string{"crm"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, expected false", body["success"])
	}
}

func TestGenerateArticleMalformedJSON(t *testing.T) {
	srv := newTestServer(&mockPipeline{})

	req := httptest.NewRequest(http.MethodPost, "/generate-article", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", w.Code)
	}
}

func TestEvaluateContentEndpoint(t *testing.T) {
	pipeline := &mockPipeline{
		report:      core.QualityReport{GrammarScore: 90, PlagiarismRisk: core.RiskLow},
		performance: core.PerformanceEstimate{EstimatedRanking: 3, SuccessProbability: 60},
	}
	srv := newTestServer(pipeline)

	w := doJSON(t, srv.Handler(), http.MethodPost, "/evaluate-content", core.Article{
		Title:   "Existing Article",
		Content: "some body text",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	if _, ok := data["quality_report"]; !ok {
		t.Error("missing quality_report")
	}
	if _, ok := data["performance_estimate"]; !ok {
		t.Error("missing performance_estimate")
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&mockPipeline{})

	req := httptest.NewRequest(http.MethodOptions, "/generate-plan", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, expected 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, expected *", got)
	}
}

func TestCORSConfiguredOrigin(t *testing.T) {
	srv := New(&mockPipeline{}, config.Server{Mode: gin.TestMode, AllowOrigins: "https://app.example.com"})

	w := doJSON(t, srv.Handler(), http.MethodGet, "/health", nil)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow-origin = %q", got)
	}
}
