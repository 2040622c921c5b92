package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/microblog/api-go/models"
	"github.com/microblog/api-go/types"
)

// statusFor maps a failure kind to its HTTP status.
func statusFor(kind models.ErrorKind) int {
	switch kind {
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindConflict, models.KindValidation:
		return http.StatusBadRequest
	case models.KindForbidden:
		return http.StatusForbidden
	case models.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a typed core failure with its mapped status; anything
// untyped (store connection loss and the like) becomes a generic 500.
func respondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(statusFor(apiErr.Kind), types.ErrorResponse{
			ErrorType:    string(apiErr.Kind),
			ErrorMessage: apiErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		ErrorType:    "Internal",
		ErrorMessage: "Internal server error",
	})
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, models.Validation("Invalid " + name)
	}
	return uint(id), nil
}
