package handlers

import (
	"context"
	"net/http"
	"strconv"

	"prep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	Service *service.LeaderboardService
}

func NewLeaderboardHandler(s *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Service: s}
}

func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	entries, err := h.Service.Top(context.Background(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
