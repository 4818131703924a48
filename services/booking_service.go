package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-backend/apperrors"
	"rental-backend/events"
	"rental-backend/models"
	"rental-backend/schemas"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bookingConflictMessage = "Property is already booked for these dates"

type BookingService struct {
	DB     *gorm.DB
	Events events.Publisher
	Log    *slog.Logger
}

func NewBookingService(db *gorm.DB, pub events.Publisher, log *slog.Logger) *BookingService {
	return &BookingService{DB: db, Events: pub, Log: loggerOrDefault(log)}
}

// Create books a property for [start_date, end_date) unless another booking
// of the same property overlaps that interval.
//
// The property row is locked FOR UPDATE before the overlap check, so two
// concurrent requests for one property run check+insert one after the other
// and cannot both succeed with overlapping dates.
func (s *BookingService) Create(ctx context.Context, in schemas.BookingCreate) (*models.Booking, error) {
	booking := in.ToModel()
	if !booking.EndDate.After(booking.StartDate) {
		return nil, apperrors.Validation("end_date must be after start_date", map[string]any{
			"start_date": booking.StartDate,
			"end_date":   booking.EndDate,
		})
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&property, booking.PropertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundWithID("Property", booking.PropertyID)
			}
			return apperrors.Internal("Failed to load property", err)
		}

		if err := s.verifyAvailability(tx, &booking); err != nil {
			return err
		}

		if err := tx.Create(&booking).Error; err != nil {
			if isForeignKeyError(err) {
				return apperrors.NotFoundWithID("Property", booking.PropertyID)
			}
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeConflict) {
			s.Log.InfoContext(ctx, "booking rejected: overlap",
				"property_id", booking.PropertyID,
				"start_date", booking.StartDate,
				"end_date", booking.EndDate,
			)
		}
		return nil, err
	}

	s.Log.InfoContext(ctx, "booking created",
		"id", booking.ID,
		"property_id", booking.PropertyID,
		"user_id", booking.UserID,
	)
	publish(ctx, s.DB, s.Events, s.Log, events.BookingCreated, schemas.NewBooking(&booking))
	return &booking, nil
}

// verifyAvailability loads the bookings the database considers overlapping
// and confirms each one with Overlaps before rejecting.
func (s *BookingService) verifyAvailability(tx *gorm.DB, booking *models.Booking) error {
	var candidates []models.Booking
	if err := tx.
		Where("property_id = ? AND start_date < ? AND end_date > ?", booking.PropertyID, booking.EndDate, booking.StartDate).
		Order("start_date ASC").
		Find(&candidates).Error; err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, existing := range candidates {
		if existing.ID == booking.ID {
			continue
		}
		if Overlaps(existing.StartDate, existing.EndDate, booking.StartDate, booking.EndDate) {
			return apperrors.BookingConflict(bookingConflictMessage).WithDetails(map[string]any{
				"booking_id": existing.ID,
				"start_date": existing.StartDate.UTC().Format(time.RFC3339),
				"end_date":   existing.EndDate.UTC().Format(time.RFC3339),
			})
		}
	}
	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}
	return &booking, nil
}
