package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzhnsglm/diyet-sub000/config"
	"github.com/oguzhnsglm/diyet-sub000/models"
	"github.com/oguzhnsglm/diyet-sub000/services"
)

func userStore(c *gin.Context) *services.EventStore {
	userID := c.GetString("userID")
	return services.NewEventStore(c.Request.Context(), config.Store, config.Logger, userID)
}

// AppendEvent appends one event to the collection named by :kind.
func AppendEvent(c *gin.Context) {
	kind := models.Kind(c.Param("kind"))
	if !models.ValidKind(kind) {
		c.JSON(400, gin.H{"error": "unknown event kind"})
		return
	}

	store := userStore(c)
	ctx := c.Request.Context()

	switch kind {
	case models.KindMeals:
		var m models.MealEvent
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, store.AppendMeal(ctx, m))

	case models.KindActivities:
		var a models.ActivityEvent
		if err := c.ShouldBindJSON(&a); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, store.AppendActivity(ctx, a))

	case models.KindGlucose:
		var g models.GlucoseReading
		if err := c.ShouldBindJSON(&g); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, store.AppendGlucose(ctx, g))

	case models.KindSleep:
		var sl models.SleepEvent
		if err := c.ShouldBindJSON(&sl); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, store.AppendSleep(ctx, sl))

	case models.KindStress:
		var st models.StressEvent
		if err := c.ShouldBindJSON(&st); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, store.AppendStress(ctx, st))
	}
}

// GetSnapshot returns the full five-collection state for the user.
func GetSnapshot(c *gin.Context) {
	c.JSON(200, userStore(c).Snapshot())
}

// RemoveEvent deletes one event; a missing id is a silent no-op.
func RemoveEvent(c *gin.Context) {
	kind := models.Kind(c.Param("kind"))
	if !models.ValidKind(kind) {
		c.JSON(400, gin.H{"error": "unknown event kind"})
		return
	}

	store := userStore(c)
	store.Remove(c.Request.Context(), kind, c.Param("id"))
	c.Status(204)
}
