package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/services"
	"github.com/microblog/api-go/types"
)

type MediaController struct {
	Service *services.MediaService
}

func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{Service: service}
}

// UploadMedia handles POST /api/medias: a multipart form upload whose
// resulting media id is later referenced from tweets.
func (mc *MediaController) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, models.Validation("Missing file upload"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	id, err := mc.Service.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.MediaCreatedResponse{Result: true, MediaID: id})
}
