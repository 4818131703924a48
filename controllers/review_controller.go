package controllers

import (
	"net/http"

	"rental-backend/schemas"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

// NewReviewController Constructor
func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

// POST /api/properties/:id/reviews/
// The property id in the path wins over any property_id in the body.
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	propertyID, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	var in schemas.ReviewCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}
	in.PropertyID = &propertyID

	review, err := c.ReviewSvc.Create(ctx.Request.Context(), in)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewReview(review))
}

// GET /api/properties/:id/reviews/
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	propertyID, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}

	list, err := c.ReviewSvc.ListByProperty(ctx.Request.Context(), propertyID)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewReviews(list))
}
