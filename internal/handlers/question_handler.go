package handlers

import (
	"context"
	"fmt"
	"net/http"

	"prep-service/internal/models"
	"prep-service/internal/repository"

	"github.com/gin-gonic/gin"
)

// QuestionHandler manages the standalone question bank that custom tests
// draw from. It is thin enough to sit directly on the repository.
type QuestionHandler struct {
	Repo *repository.QuestionRepository
}

func NewQuestionHandler(repo *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{Repo: repo}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.Repo.FindByTopic(context.Background(), c.Query("topic"), c.Query("difficulty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.Repo.FindByID(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !question.HasValidCorrectOption() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correct option is out of range"})
		return
	}
	if err := h.Repo.Create(context.Background(), &question); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) CreateQuestions(c *gin.Context) {
	var questions []models.Question
	if err := c.ShouldBindJSON(&questions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no questions provided"})
		return
	}
	for i := range questions {
		if !questions[i].HasValidCorrectOption() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("question %d has an invalid correct option", i)})
			return
		}
	}
	if err := h.Repo.CreateMany(context.Background(), questions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inserted": len(questions)})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Repo.Delete(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
