package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/controllers"
)

func SetupMediaRoutes(api *gin.RouterGroup, mediaController *controllers.MediaController) {
	api.POST("/medias", mediaController.UploadMedia)
}
