package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"prep-service/internal/models"
	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type TopicHandler struct {
	Service *service.TopicService
}

func NewTopicHandler(s *service.TopicService) *TopicHandler {
	return &TopicHandler{Service: s}
}

func (h *TopicHandler) TodayTopics(c *gin.Context) {
	topics, err := h.Service.TodayTopics(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *TopicHandler) GetTopic(c *gin.Context) {
	topic, err := h.Service.GetTopic(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *TopicHandler) TopicsBySubject(c *gin.Context) {
	topics, err := h.Service.TopicsBySubject(context.Background(), c.Param("subject"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var topic models.DailyTopic
	if err := c.ShouldBindJSON(&topic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateTopic(context.Background(), &topic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, topic)
}

// CompleteTopic marks the topic done for the caller and returns the streak
// counters after the update.
func (h *TopicHandler) CompleteTopic(c *gin.Context) {
	result, err := h.Service.CompleteTopic(context.Background(), c.Param("id"), CurrentUser(c), time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
