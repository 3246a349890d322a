package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oguzhnsglm/diyet-sub000/controllers"
	"github.com/oguzhnsglm/diyet-sub000/middlewares"
	"github.com/oguzhnsglm/diyet-sub000/models"
)

func SetupRouter() *gin.Engine {
	registerValidators()

	r := gin.Default()

	// Public: nutrition estimation needs no user scope.
	r.POST("/food/estimate", controllers.EstimateFood)

	events := r.Group("/events")
	events.Use(middlewares.UserScope())
	{
		events.POST("/:kind", controllers.AppendEvent)
		events.GET("", controllers.GetSnapshot)
		events.DELETE("/:kind/:id", controllers.RemoveEvent)
	}

	predict := r.Group("/predict")
	predict.Use(middlewares.UserScope())
	{
		predict.POST("/meal", controllers.PredictMeal)
		predict.POST("/activity", controllers.PredictActivity)
	}

	insights := r.Group("/insights")
	insights.Use(middlewares.UserScope())
	{
		insights.GET("", controllers.GetInsights)
	}

	return r
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("intensity", func(fl validator.FieldLevel) bool {
		switch models.Intensity(fl.Field().String()) {
		case models.IntensityLow, models.IntensityMedium, models.IntensityHigh:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("sleepquality", func(fl validator.FieldLevel) bool {
		switch models.SleepQuality(fl.Field().String()) {
		case models.SleepPoor, models.SleepMedium, models.SleepGood, models.SleepExcellent:
			return true
		}
		return false
	})
}
