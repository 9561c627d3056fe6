package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daily-hold/plank-api/controllers"
)

func SetupCommunityRoutes(protected *gin.RouterGroup, communityController *controllers.CommunityController) {
	community := protected.Group("/community")
	{
		community.GET("/posts", communityController.GetPosts)
		community.POST("/posts", communityController.CreatePost)
		community.POST("/posts/:id/reactions", communityController.ToggleReaction)
	}
}
