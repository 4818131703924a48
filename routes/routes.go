package routes

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rental-backend/apperrors"
	"rental-backend/controllers"
	"rental-backend/middleware"
	"rental-backend/schemas"
	"rental-backend/utils"
)

type Controllers struct {
	Health   *controllers.HealthController
	Property *controllers.PropertyController
	Booking  *controllers.BookingController
	Review   *controllers.ReviewController
	Message  *controllers.MessageController
}

var registerValidations sync.Once

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires middleware and every route onto a fresh engine.
func SetupRouter(log *slog.Logger, corsOrigins []string, ctl Controllers) *gin.Engine {
	registerValidations.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			schemas.RegisterValidations(v)
		}
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, apperrors.NotFound("Route"))
	})

	r.GET("/health", ctl.Health.Health)

	api := r.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.POST("/", ctl.Property.CreateProperty)
			properties.GET("/", ctl.Property.GetProperties)

			// static segment, registered next to /:id
			properties.GET("/search/", ctl.Property.SearchProperties)

			properties.GET("/:id", ctl.Property.GetProperty)
			properties.PUT("/:id", ctl.Property.ReplaceProperty)
			properties.PATCH("/:id", ctl.Property.PatchProperty)
			properties.DELETE("/:id", ctl.Property.DeleteProperty)

			properties.POST("/:id/reviews/", ctl.Review.CreateReview)
			properties.GET("/:id/reviews/", ctl.Review.GetReviews)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/", ctl.Booking.CreateBooking)
			bookings.GET("/:id", ctl.Booking.GetBooking)
		}

		messages := api.Group("/messages")
		{
			messages.POST("/", ctl.Message.CreateMessage)
			messages.GET("/:booking_id", ctl.Message.GetMessages)
		}
	}

	return r
}
