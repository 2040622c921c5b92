package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/controllers"
)

func SetupUserRoutes(api *gin.RouterGroup, userController *controllers.UserController) {
	users := api.Group("/users")
	{
		users.GET("/me", userController.GetOwnProfile)
		users.GET("/:id", userController.GetProfileByID)
	}
}
