package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daily-hold/plank-api/controllers"
)

func SetupPlankRoutes(protected *gin.RouterGroup, plankController *controllers.PlankController) {
	planks := protected.Group("/planks")
	{
		planks.POST("", plankController.LogPlank)
		planks.GET("/recent", plankController.GetRecentLogs)
		planks.GET("/stats", plankController.GetStats)
	}
}
