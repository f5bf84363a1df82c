package handlers

import (
	"context"
	"errors"
	"net/http"

	"prep-service/internal/models"
	"prep-service/internal/selection"
	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockTestHandler struct {
	Service *service.MockTestService
}

func NewMockTestHandler(s *service.MockTestService) *MockTestHandler {
	return &MockTestHandler{Service: s}
}

func (h *MockTestHandler) ListTests(c *gin.Context) {
	tests, err := h.Service.ListTests(context.Background(), c.Query("difficulty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *MockTestHandler) GetTest(c *gin.Context) {
	test, err := h.Service.GetTest(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mock test not found"})
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *MockTestHandler) CreateTest(c *gin.Context) {
	var test models.MockTest
	if err := c.ShouldBindJSON(&test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateTest(context.Background(), &test); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (h *MockTestHandler) DeleteTest(c *gin.Context) {
	if err := h.Service.DeleteTest(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type generateTestRequest struct {
	Title               string   `json:"title" binding:"required"`
	Topic               string   `json:"topic" binding:"required"`
	Difficulty          string   `json:"difficulty"`
	Sections            []string `json:"sections" binding:"required,min=1"`
	QuestionsPerSection int      `json:"questions_per_section"`
}

func (h *MockTestHandler) GenerateTest(c *gin.Context) {
	var req generateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.QuestionsPerSection <= 0 {
		req.QuestionsPerSection = 5
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	test, err := h.Service.GenerateTest(context.Background(), req.Title, req.Topic, req.Difficulty, req.Sections, req.QuestionsPerSection)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, test)
}

type customTestRequest struct {
	Title           string                  `json:"title" binding:"required"`
	Sections        []selection.SectionSpec `json:"sections" binding:"required,min=1,dive"`
	DurationMinutes int                     `json:"duration_minutes"`
}

// AssembleCustomTest builds a one-off test from the question bank. The
// result carries a "custom-" ID and expires after the scoring window.
func (h *MockTestHandler) AssembleCustomTest(c *gin.Context) {
	var req customTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.Service.AssembleCustomTest(context.Background(), req.Title, req.Sections, req.DurationMinutes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, test)
}

type submitTestRequest struct {
	Answers          [][]*int                 `json:"answers" binding:"required"`
	TimeTakenSeconds int                      `json:"time_taken_seconds"`
	ScoreData        *service.ClientScoreData `json:"scoreData"`
}

func (h *MockTestHandler) SubmitTest(c *gin.Context) {
	var req submitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.Service.Submit(context.Background(), c.Param("id"), CurrentUser(c), req.Answers, req.TimeTakenSeconds, req.ScoreData)
	if err != nil {
		if report != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "result": report})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mock test not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
