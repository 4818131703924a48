package controllers

import (
	"net/http"

	"rental-backend/schemas"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	MessageSvc *services.MessageService
}

// NewMessageController Constructor
func NewMessageController(svc *services.MessageService) *MessageController {
	return &MessageController{MessageSvc: svc}
}

// POST /api/messages/
func (c *MessageController) CreateMessage(ctx *gin.Context) {
	var in schemas.MessageCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.JSONBindError(ctx, err)
		return
	}

	message, err := c.MessageSvc.Create(ctx.Request.Context(), in)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewMessage(message))
}

// GET /api/messages/:booking_id
// Messages come back oldest first.
func (c *MessageController) GetMessages(ctx *gin.Context) {
	bookingID, err := pathID(ctx, "booking_id")
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}

	list, err := c.MessageSvc.ListByBooking(ctx.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, schemas.NewMessages(list))
}
