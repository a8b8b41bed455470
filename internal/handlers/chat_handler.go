package handlers

import (
	"context"
	"net/http"

	"github.com/HAS1ELB/INTELLIPATH/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service *service.ChatService
}

func NewChatHandler(s *service.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

// Chat processes one conversation turn.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
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

	response, err := h.Service.HandleTurn(context.Background(), userID, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "The instructor is unavailable right now", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}

// StartTopic generates a syllabus and seeds the conversation.
func (h *ChatHandler) StartTopic(c *gin.Context) {
	var req struct {
		Topic string `json:"topic" binding:"required"`
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

	text, err := h.Service.StartTopic(context.Background(), userID, req.Topic)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate syllabus", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": req.Topic, "syllabus": text})
}

// GetState returns the conversation state for the user.
func (h *ChatHandler) GetState(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	c.JSON(http.StatusOK, h.Service.Snapshot(userID))
}

// ResetQuizState clears the quiz-in-progress marker.
func (h *ChatHandler) ResetQuizState(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}
	h.Service.ResetQuizState(userID)
	c.JSON(http.StatusOK, gin.H{"quiz_in_progress": false})
}
