package controllers

import (
	"strconv"

	"rental-backend/apperrors"

	"github.com/gin-gonic/gin"
)

// pathID reads a positive integer path parameter.
func pathID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("Invalid path parameter", map[string]any{
			"errors": []map[string]string{{"field": name, "message": name + " must be a positive integer"}},
		})
	}
	return uint(id), nil
}
