package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/HAS1ELB/INTELLIPATH/internal/quiz"
	"github.com/HAS1ELB/INTELLIPATH/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// CreateSession generates a question set and starts a quiz session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		Topic        string `json:"topic" binding:"required"`
		Difficulty   string `json:"difficulty"`
		NumQuestions int    `json:"num_questions"`
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

	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}
	if req.NumQuestions < 1 {
		req.NumQuestions = 5
	}

	session, err := h.Service.StartSession(context.Background(), userID, req.Topic, req.Difficulty, req.NumQuestions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextQuestion returns the question under the cursor, without the answer.
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	question, err := h.Service.CurrentQuestion(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, quiz.ErrSessionComplete) {
			c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	// The correct index and explanation stay server-side until submission.
	c.JSON(http.StatusOK, gin.H{
		"question": question.Question,
		"options":  question.Options,
	})
}

// SubmitAnswer evaluates one submission and advances the session.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		ChosenIndex *int `json:"chosen_index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	eval, session, err := h.Service.SubmitAnswer(context.Background(), c.Param("id"), *req.ChosenIndex)
	if err != nil {
		if errors.Is(err, quiz.ErrSessionComplete) {
			c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit answer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_correct": eval.IsCorrect,
		"feedback":   eval.Feedback,
		"cursor":     session.Cursor,
		"score":      session.Score,
		"status":     session.Status,
	})
}
