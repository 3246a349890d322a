package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzhnsglm/diyet-sub000/models"
	"github.com/oguzhnsglm/diyet-sub000/services"
)

// PredictMeal forecasts the glucose impact of eating a given amount of
// carbohydrate right now.
func PredictMeal(c *gin.Context) {
	var body struct {
		Carbs          float64 `json:"carbs" binding:"gte=0"`
		CurrentGlucose float64 `json:"currentGlucose" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	snap := userStore(c).Snapshot()
	svc := services.NewPredictionService()
	c.JSON(200, svc.PredictAfterMeal(snap, body.Carbs, body.CurrentGlucose))
}

// PredictActivity forecasts the glucose impact of a planned activity.
func PredictActivity(c *gin.Context) {
	var body struct {
		Type           string           `json:"type" binding:"required"`
		Duration       float64          `json:"duration" binding:"gte=0"`
		Intensity      models.Intensity `json:"intensity" binding:"required,intensity"`
		CurrentGlucose float64          `json:"currentGlucose" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	snap := userStore(c).Snapshot()
	svc := services.NewPredictionService()
	c.JSON(200, svc.PredictAfterActivity(snap, body.Type, body.Duration, body.Intensity, body.CurrentGlucose))
}
