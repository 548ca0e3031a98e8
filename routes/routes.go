package routes

import (
	"github.com/jozanardo/Daily-Diet-API/controllers"
	"github.com/jozanardo/Daily-Diet-API/middlewares"
	"github.com/jozanardo/Daily-Diet-API/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	userCtrl := controllers.NewUserController(services.NewUserService(db))
	mealCtrl := controllers.NewMealController(
		services.NewMealService(db),
		services.NewAnalyticsService(db),
	)

	// Public registration route
	users := r.Group("/users")
	{
		users.POST("", userCtrl.Register)
	}

	meals := r.Group("/meals")
	{
		// Create mints the session cookie itself, so it stays unguarded
		meals.POST("", mealCtrl.Create)

		guarded := meals.Group("", middlewares.SessionMiddleware())
		{
			guarded.GET("", mealCtrl.List)
			guarded.GET("/metrics", mealCtrl.Metrics)
			guarded.GET("/:id", mealCtrl.Get)
			guarded.PUT("/:id", mealCtrl.Update)
			guarded.DELETE("/:id", mealCtrl.Delete)
		}
	}

	return r
}
