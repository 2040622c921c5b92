package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/controllers"
)

func SetupTweetRoutes(api *gin.RouterGroup, tweetController *controllers.TweetController) {
	tweets := api.Group("/tweets")
	{
		tweets.POST("", tweetController.CreateTweet)
		tweets.DELETE("/:id", tweetController.DeleteTweet)
	}
}
