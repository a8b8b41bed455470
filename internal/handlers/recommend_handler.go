package handlers

import (
	"context"
	"net/http"

	"github.com/HAS1ELB/INTELLIPATH/internal/recommend"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	Recommender *recommend.Recommender
}

func NewRecommendHandler(r *recommend.Recommender) *RecommendHandler {
	return &RecommendHandler{Recommender: r}
}

// GetRecommendations suggests courses. The offline catalog variant is the
// default; ?llm=true switches to the model-backed variant.
func (h *RecommendHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	useLLM := c.Query("llm") == "true"
	courses, err := h.Recommender.Recommend(
		context.Background(),
		userID,
		c.Query("interests"),
		c.Query("career_goal"),
		useLLM,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
