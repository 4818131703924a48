package services

import (
	"context"
	"log/slog"

	"rental-backend/apperrors"
	"rental-backend/events"
	"rental-backend/models"
	"rental-backend/schemas"

	"gorm.io/gorm"
)

type MessageService struct {
	DB     *gorm.DB
	Events events.Publisher
	Log    *slog.Logger
}

func NewMessageService(db *gorm.DB, pub events.Publisher, log *slog.Logger) *MessageService {
	return &MessageService{DB: db, Events: pub, Log: loggerOrDefault(log)}
}

func (s *MessageService) Create(ctx context.Context, in schemas.MessageCreate) (*models.Message, error) {
	message := in.ToModel()

	db := s.DB.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Booking{}).Where("id = ?", message.BookingID).Count(&count).Error; err != nil {
		return nil, apperrors.Internal("Failed to load booking", err)
	}
	if count == 0 {
		return nil, apperrors.NotFoundWithID("Booking", message.BookingID)
	}

	if err := db.Create(&message).Error; err != nil {
		if isForeignKeyError(err) {
			return nil, apperrors.NotFoundWithID("Booking", message.BookingID)
		}
		return nil, apperrors.Internal("Failed to create message", err)
	}

	s.Log.InfoContext(ctx, "message created", "id", message.ID, "booking_id", message.BookingID)
	publish(ctx, s.DB, s.Events, s.Log, events.MessageCreated, schemas.NewMessage(&message))
	return &message, nil
}

// ListByBooking returns the conversation of a booking, oldest first.
func (s *MessageService) ListByBooking(ctx context.Context, bookingID uint) ([]models.Message, error) {
	var list []models.Message
	if err := s.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("sent_at ASC").
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, apperrors.Internal("Failed to list messages", err)
	}
	return list, nil
}
