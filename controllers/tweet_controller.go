package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/types"
	"github.com/microblog/api-go/utils"
)

type TweetController struct {
	Service *services.TweetService
}

type CreateTweetRequest struct {
	TweetData     string `json:"tweet_data"`
	TweetMediaIDs []uint `json:"tweet_media_ids"`
}

func NewTweetController(service *services.TweetService) *TweetController {
	return &TweetController{Service: service}
}

// CreateTweet handles POST /api/tweets.
func (tc *TweetController) CreateTweet(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.Validation("Invalid tweet data"))
		return
	}

	id, err := tc.Service.Create(user.UserID, req.TweetData, req.TweetMediaIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.TweetCreatedResponse{Result: true, ID: id})
}

// DeleteTweet handles DELETE /api/tweets/:id.
func (tc *TweetController) DeleteTweet(c *gin.Context) {
	user := utils.GetUser(c)

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := tc.Service.Delete(user.UserID, tweetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, types.OperationResponse{Result: true})
}
