package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/controllers"
)

func SetupInteractionRoutes(api *gin.RouterGroup, interactionController *controllers.InteractionController) {
	tweets := api.Group("/tweets")
	{
		tweets.POST("/:id/likes", interactionController.AddLike)
		tweets.DELETE("/:id/likes", interactionController.DeleteLike)
	}

	users := api.Group("/users")
	{
		users.POST("/:id/follow", interactionController.AddFollow)
		users.DELETE("/:id/follow", interactionController.DeleteFollow)
	}
}
