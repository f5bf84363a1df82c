package handlers

import (
	"context"
	"errors"
	"net/http"

	"prep-service/internal/models"
	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResumeHandler struct {
	Service *service.ResumeService
}

func NewResumeHandler(s *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{Service: s}
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	resumes, err := h.Service.ListResumes(context.Background(), CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	resume, err := h.Service.GetResume(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var resume models.Resume
	if err := c.ShouldBindJSON(&resume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resume.UserID = CurrentUser(c)
	resume.Reviews = nil
	if err := h.Service.CreateResume(context.Background(), &resume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// The owner and review history are not client-writable.
	delete(update, "user_id")
	delete(update, "reviews")
	delete(update, "_id")

	if err := h.Service.UpdateResume(context.Background(), c.Param("id"), CurrentUser(c), bson.M(update)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	if err := h.Service.DeleteResume(context.Background(), c.Param("id"), CurrentUser(c)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ReviewResume asks the model to critique the stored resume.
func (h *ResumeHandler) ReviewResume(c *gin.Context) {
	review, err := h.Service.ReviewResume(context.Background(), c.Param("id"), CurrentUser(c))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, review)
}
