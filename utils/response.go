package utils

import (
	"net/http"

	"rental-backend/apperrors"
	"rental-backend/schemas"

	"github.com/gin-gonic/gin"
)

// JSONError writes err as the standard error body. Errors that are not an
// *apperrors.AppError are reported as 500 without leaking their text.
func JSONError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	if !apperrors.IsAppError(err) || appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(appErr.StatusCode(), appErr.Body())
}

// JSONBindError reports a failed ShouldBind* call as a 422 listing every
// offending field.
func JSONBindError(c *gin.Context, err error) {
	JSONError(c, apperrors.Validation("Request validation failed", map[string]any{
		"errors": schemas.FieldErrors(err),
	}))
}

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}
