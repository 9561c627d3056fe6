package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/controllers"
	"github.com/daily-hold/plank-api/middleware"
	"github.com/daily-hold/plank-api/progress"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	recorder := progress.NewRecorder(progress.NewGormStore(db))

	authController := controllers.NewAuthController(db)
	plankController := controllers.NewPlankController(db, recorder)
	companyController := controllers.NewCompanyController(db)
	feedController := controllers.NewFeedController(db)
	communityController := controllers.NewCommunityController(db)
	tipsController := controllers.NewTipsController(db)
	validationController := controllers.NewValidationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/forgot-password", authController.ForgotPassword)
		public.POST("/reset-password", authController.ResetPassword)
		public.GET("/validate/company-code/:code", validationController.ValidateCompanyCode)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		protected.GET("/company/progress", companyController.GetProgress)
		protected.GET("/feed", feedController.GetActivityFeed)
		protected.GET("/tips", tipsController.GetTips)

		SetupPlankRoutes(protected, plankController)
		SetupCommunityRoutes(protected, communityController)
	}

	SetupAdminRoutes(r, db)
}
