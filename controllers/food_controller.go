package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzhnsglm/diyet-sub000/data"
	"github.com/oguzhnsglm/diyet-sub000/services"
)

// EstimateFood resolves a free-text food description into a calorie and
// sugar estimate. Empty text is a valid request; it yields a zero
// confidence "none" result rather than an error.
func EstimateFood(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewNutritionService(data.DefaultIndex())
	c.JSON(200, svc.Estimate(body.Text))
}
