package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/types"
	"github.com/microblog/api-go/utils"
)

type UserController struct {
	Service *services.ProfileService
}

func NewUserController(service *services.ProfileService) *UserController {
	return &UserController{Service: service}
}

// GetOwnProfile handles GET /api/users/me.
func (uc *UserController) GetOwnProfile(c *gin.Context) {
	user := utils.GetUser(c)
	uc.renderProfile(c, user.UserID)
}

// GetProfileByID handles GET /api/users/:id.
func (uc *UserController) GetProfileByID(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	uc.renderProfile(c, userID)
}

func (uc *UserController) renderProfile(c *gin.Context, userID uint) {
	profile, err := uc.Service.BuildProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ProfileResponse{
		Result:    true,
		User:      profile.User,
		Followers: profile.Followers,
		Following: profile.Following,
	})
}
