package handlers

import (
	"context"
	"net/http"

	"github.com/HAS1ELB/INTELLIPATH/internal/service"
	"github.com/HAS1ELB/INTELLIPATH/internal/skills"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service  *service.ProgressService
	Analyzer *skills.Analyzer
}

func NewProgressHandler(s *service.ProgressService, analyzer *skills.Analyzer) *ProgressHandler {
	return &ProgressHandler{Service: s, Analyzer: analyzer}
}

// RecordStudySession logs minutes studied on a topic.
func (h *ProgressHandler) RecordStudySession(c *gin.Context) {
	var req struct {
		Topic           string `json:"topic" binding:"required"`
		DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	if err := h.Service.RecordStudySession(context.Background(), userID, req.Topic, req.DurationMinutes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record study session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recorded": true})
}

// GetDashboard returns the aggregates the UI charts.
func (h *ProgressHandler) GetDashboard(c *gin.Context) {
	userID := c.Param("id")
	dashboard, err := h.Service.GetDashboard(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetResults lists a user's quiz results, newest first.
func (h *ProgressHandler) GetResults(c *gin.Context) {
	userID := c.Param("id")
	results, err := h.Service.ResultRepo.FindByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// AnalyzePerformance returns strengths, weaknesses and the model's
// improvement narrative.
func (h *ProgressHandler) AnalyzePerformance(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	analysis, err := h.Analyzer.AnalyzeQuizPerformance(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze performance", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// SkillGap compares current skills against a target career.
func (h *ProgressHandler) SkillGap(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	gap, err := h.Analyzer.SkillGapAnalysis(context.Background(), userID, c.Query("career_goal"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze skill gap", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gap)
}
