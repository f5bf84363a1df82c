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

type FlashcardHandler struct {
	Service *service.FlashcardService
}

func NewFlashcardHandler(s *service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{Service: s}
}

func (h *FlashcardHandler) ListDecks(c *gin.Context) {
	decks, err := h.Service.ListDecks(context.Background(), c.Query("topic"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, decks)
}

func (h *FlashcardHandler) GetDeck(c *gin.Context) {
	deck, err := h.Service.GetDeck(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}
	c.JSON(http.StatusOK, deck)
}

func (h *FlashcardHandler) CreateDeck(c *gin.Context) {
	var deck models.FlashcardDeck
	if err := c.ShouldBindJSON(&deck); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateDeck(context.Background(), &deck); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, deck)
}

func (h *FlashcardHandler) DeleteDeck(c *gin.Context) {
	if err := h.Service.DeleteDeck(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type generateDeckRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count"`
}

func (h *FlashcardHandler) GenerateDeck(c *gin.Context) {
	var req generateDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	deck, err := h.Service.GenerateDeck(context.Background(), req.Topic, req.Count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, deck)
}

type reviewCardRequest struct {
	CardIndex int `json:"card_index"`
	// Quality grades the recall from 0 (blackout) to 5 (perfect).
	Quality *int `json:"quality" binding:"required"`
}

func (h *FlashcardHandler) ReviewCard(c *gin.Context) {
	var req reviewCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *req.Quality < 0 || *req.Quality > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quality must be between 0 and 5"})
		return
	}

	review, err := h.Service.ReviewCard(context.Background(), CurrentUser(c), c.Param("id"), req.CardIndex, *req.Quality, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *FlashcardHandler) DueReviews(c *gin.Context) {
	reviews, err := h.Service.DueReviews(context.Background(), CurrentUser(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
