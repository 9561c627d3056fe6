package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/controllers"
	"github.com/daily-hold/plank-api/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminController := controllers.NewAdminController(db)
	moderationController := controllers.NewModerationController(db)
	analyticsController := controllers.NewAnalyticsController(db)

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/companies", adminController.ListCompanies)
		admin.POST("/companies", adminController.CreateCompany)
		admin.PUT("/companies/:id", adminController.UpdateCompany)
		admin.DELETE("/companies/:id", adminController.DeactivateCompany)

		admin.GET("/users", adminController.ListUsers)
		admin.PUT("/users/:id/company", adminController.ReassignUserCompany)
		admin.PUT("/users/:id/admin", adminController.SetAdminFlag)
		admin.DELETE("/users/:id", adminController.DeleteUser)

		admin.GET("/plank-logs", moderationController.ListPlankLogs)
		admin.DELETE("/plank-logs/:id", moderationController.DeletePlankLog)
		admin.GET("/community-posts", moderationController.ListCommunityPosts)
		admin.DELETE("/community-posts/:id", moderationController.DeleteCommunityPost)

		admin.GET("/analytics", analyticsController.GetAnalytics)
		admin.GET("/stats", analyticsController.GetSystemStats)
	}
}
