package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/controllers"
)

func SetupFeedRoutes(api *gin.RouterGroup, feedController *controllers.FeedController) {
	api.GET("/tweets", feedController.GetFeed)
}
