package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/repository"
	"github.com/microblog/api-go/types"
	"github.com/microblog/api-go/utils"
)

// APIKeyAuth resolves the api-key header to a user before any core logic
// runs. An unknown or missing key short-circuits with 401.
func APIKeyAuth(db *gorm.DB) gin.HandlerFunc {
	repo := repository.New(db)

	return func(c *gin.Context) {
		key := c.GetHeader("api-key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{
				ErrorType:    string(models.KindUnauthorized),
				ErrorMessage: "Invalid API Key",
			})
			return
		}

		user, err := repo.UserByAPIKey(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
				ErrorType:    "Internal",
				ErrorMessage: "Internal server error",
			})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{
				ErrorType:    string(models.KindUnauthorized),
				ErrorMessage: "Invalid API Key",
			})
			return
		}

		c.Set(string(utils.UserContextKey), &utils.UserClaims{
			UserID: user.ID,
			Name:   user.Name,
		})

		c.Next()
	}
}
