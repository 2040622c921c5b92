package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/types"
	"github.com/microblog/api-go/utils"
)

type FeedController struct {
	Service *services.FeedService
}

func NewFeedController(service *services.FeedService) *FeedController {
	return &FeedController{Service: service}
}

// GetFeed handles GET /api/tweets: the requesting user's feed, ranked by
// like count descending. A user following nobody gets an empty list.
func (fc *FeedController) GetFeed(c *gin.Context) {
	user := utils.GetUser(c)

	tweets, err := fc.Service.BuildFeed(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.FeedResponse{Result: true, Tweets: tweets})
}
