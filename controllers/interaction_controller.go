package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/types"
	"github.com/microblog/api-go/utils"
)

type InteractionController struct {
	Service *services.InteractionService
}

func NewInteractionController(service *services.InteractionService) *InteractionController {
	return &InteractionController{Service: service}
}

// AddLike handles POST /api/tweets/:id/likes.
func (ic *InteractionController) AddLike(c *gin.Context) {
	user := utils.GetUser(c)

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ic.Service.AddLike(user.UserID, tweetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.OperationResponse{Result: true})
}

// DeleteLike handles DELETE /api/tweets/:id/likes.
func (ic *InteractionController) DeleteLike(c *gin.Context) {
	user := utils.GetUser(c)

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ic.Service.DeleteLike(user.UserID, tweetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, types.OperationResponse{Result: true})
}

// AddFollow handles POST /api/users/:id/follow.
func (ic *InteractionController) AddFollow(c *gin.Context) {
	user := utils.GetUser(c)

	followID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ic.Service.AddFollow(user.UserID, followID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.OperationResponse{Result: true})
}

// DeleteFollow handles DELETE /api/users/:id/follow.
func (ic *InteractionController) DeleteFollow(c *gin.Context) {
	user := utils.GetUser(c)

	followID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ic.Service.DeleteFollow(user.UserID, followID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, types.OperationResponse{Result: true})
}
