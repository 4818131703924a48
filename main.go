package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rental-backend/config"
	"rental-backend/controllers"
	"rental-backend/events"
	"rental-backend/routes"
	"rental-backend/services"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration", "error", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(log)
	if envErr != nil {
		log.Debug(".env not loaded, using process environment", "error", envErr)
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		log.Error("database connect failed", "error", err)
		os.Exit(1)
	}

	publisher := newPublisher(cfg, log)

	// Initialize services
	propertyService := services.NewPropertyService(db, log)
	bookingService := services.NewBookingService(db, publisher, log)
	reviewService := services.NewReviewService(db, publisher, log)
	messageService := services.NewMessageService(db, publisher, log)

	// Build router
	router := routes.SetupRouter(log, cfg.CorsOrigins, routes.Controllers{
		Health:   controllers.NewHealthController(db),
		Property: controllers.NewPropertyController(propertyService),
		Booking:  controllers.NewBookingController(bookingService),
		Review:   controllers.NewReviewController(reviewService),
		Message:  controllers.NewMessageController(messageService),
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	go func() {
		log.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	if err := publisher.Close(); err != nil {
		log.Warn("closing event publisher", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}

// newPublisher connects to RabbitMQ when RABBITMQ_URL is set. Without a
// broker, or when it cannot be reached at startup, events are dropped.
func newPublisher(cfg *config.Config, log *slog.Logger) events.Publisher {
	if cfg.RabbitMQURL == "" {
		log.Info("RABBITMQ_URL not set, domain events disabled")
		return events.NopPublisher{}
	}

	pub, err := events.NewAMQPPublisher(events.AMQPConfig{
		URL:          cfg.RabbitMQURL,
		ExchangeName: cfg.RabbitMQExchange,
		ExchangeType: "topic",
	}, log)
	if err != nil {
		log.Warn("rabbitmq unavailable, domain events disabled", "error", err)
		return events.NopPublisher{}
	}
	return pub
}
