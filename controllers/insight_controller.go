package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oguzhnsglm/diyet-sub000/services"
)

// GetInsights mines the user's recent history for rule-based
// observations. window_days defaults to 30.
func GetInsights(c *gin.Context) {
	windowDays, err := strconv.Atoi(c.DefaultQuery("window_days", "30"))
	if err != nil || windowDays <= 0 {
		c.JSON(400, gin.H{"error": "window_days must be a positive integer"})
		return
	}

	snap := userStore(c).Snapshot()
	svc := services.NewInsightService()
	c.JSON(200, gin.H{"insights": svc.Mine(snap, windowDays)})
}
