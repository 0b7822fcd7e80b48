package server

import (
	"net/http"

	"seoforge/internal/core"

	"github.com/gin-gonic/gin"
)

// articleRequest is the inbound payload for single-article generation.
type articleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Keywords    []string `json:"keywords" binding:"required"`
	ContentType string   `json:"content_type"`
}

func successResponse(data any) gin.H {
	return gin.H{"success": true, "data": data}
}

// errorResponse is the single generic failure envelope. All failure kinds —
// upstream generation errors included — surface the same way, carrying only
// the underlying message.
func errorResponse(err error) gin.H {
	return gin.H{"success": false, "error": err.Error()}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "SEO content generator API is running"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "API is running properly"})
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	var profile core.BusinessProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bundle, err := s.pipeline.GeneratePlan(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(bundle))
}

func (s *Server) handleGenerateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bundle, err := s.pipeline.GenerateArticle(c.Request.Context(), req.Title, req.Keywords, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(bundle))
}

func (s *Server) handleEvaluateContent(c *gin.Context) {
	var article core.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	report, performance, err := s.pipeline.EvaluateArticle(c.Request.Context(), article)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"quality_report":       report,
		"performance_estimate": performance,
	}))
}
