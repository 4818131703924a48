package controllers

import (
	"net/http"

	"rental-backend/schemas"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

// NewBookingController Constructor
func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// POST /api/bookings/
// An overlapping booking for the same property is rejected with 400.
func (c *BookingController) CreateBooking(ctx *gin.Context) {
	var in schemas.BookingCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	booking, err := c.BookingSvc.Create(ctx.Request.Context(), in)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewBooking(booking))
}

// GET /api/bookings/:id
func (c *BookingController) GetBooking(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}

	booking, err := c.BookingSvc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewBooking(booking))
}
