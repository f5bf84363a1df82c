package handlers

import (
	"context"
	"net/http"

	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	Service *service.InterviewService
}

func NewInterviewHandler(s *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{Service: s}
}

func (h *InterviewHandler) ListSets(c *gin.Context) {
	sets, err := h.Service.ListSets(context.Background(), c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sets)
}

func (h *InterviewHandler) GetSet(c *gin.Context) {
	set, err := h.Service.GetSet(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview set not found"})
		return
	}
	c.JSON(http.StatusOK, set)
}

type generateInterviewRequest struct {
	Role       string `json:"role" binding:"required"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

func (h *InterviewHandler) GenerateSet(c *gin.Context) {
	var req generateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = 5
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	set, err := h.Service.GenerateSet(context.Background(), req.Role, req.Topic, req.Difficulty, req.Count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, set)
}
