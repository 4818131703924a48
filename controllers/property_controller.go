package controllers

import (
	"net/http"

	"rental-backend/schemas"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	PropertySvc *services.PropertyService
}

// NewPropertyController Constructor
func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

// POST /api/properties/
func (c *PropertyController) CreateProperty(ctx *gin.Context) {
	var in schemas.PropertyCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	property, err := c.PropertySvc.Create(ctx.Request.Context(), in)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewProperty(property))
}

// GET /api/properties/
func (c *PropertyController) GetProperties(ctx *gin.Context) {
	var q schemas.PropertyListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	list, err := c.PropertySvc.List(ctx.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewProperties(list))
}

// GET /api/properties/:id
func (c *PropertyController) GetProperty(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}

	property, err := c.PropertySvc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewProperty(property))
}

// PUT /api/properties/:id replaces every editable column.
func (c *PropertyController) ReplaceProperty(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	var in schemas.PropertyCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	property, err := c.PropertySvc.Update(ctx.Request.Context(), id, in.Fields())
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewProperty(property))
}

// PATCH /api/properties/:id changes only the supplied columns.
func (c *PropertyController) PatchProperty(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	var in schemas.PropertyPatch
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	property, err := c.PropertySvc.Update(ctx.Request.Context(), id, in.Fields())
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewProperty(property))
}

// DELETE /api/properties/:id
func (c *PropertyController) DeleteProperty(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}

	if _, err := c.PropertySvc.Delete(ctx.Request.Context(), id); err != nil {
		utils.JSONError(ctx, err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "Property deleted")
}

// GET /api/properties/search/
func (c *PropertyController) SearchProperties(ctx *gin.Context) {
	var q schemas.PropertySearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	list, err := c.PropertySvc.Search(ctx.Request.Context(), q)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewProperties(list))
}
