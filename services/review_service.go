package services

import (
	"context"
	"errors"
	"log/slog"

	"rental-backend/apperrors"
	"rental-backend/events"
	"rental-backend/models"
	"rental-backend/schemas"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB     *gorm.DB
	Events events.Publisher
	Log    *slog.Logger
}

func NewReviewService(db *gorm.DB, pub events.Publisher, log *slog.Logger) *ReviewService {
	return &ReviewService{DB: db, Events: pub, Log: loggerOrDefault(log)}
}

func (s *ReviewService) Create(ctx context.Context, in schemas.ReviewCreate) (*models.Review, error) {
	if in.PropertyID == nil {
		return nil, apperrors.Validation("property_id is required", map[string]any{"field": "property_id"})
	}
	review := in.ToModel()

	db := s.DB.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Property{}).Where("id = ?", review.PropertyID).Count(&count).Error; err != nil {
		return nil, apperrors.Internal("Failed to load property", err)
	}
	if count == 0 {
		return nil, apperrors.NotFoundWithID("Property", review.PropertyID)
	}

	if err := db.Create(&review).Error; err != nil {
		if isForeignKeyError(err) {
			return nil, apperrors.NotFoundWithID("Property", review.PropertyID)
		}
		return nil, apperrors.Internal("Failed to create review", err)
	}

	s.Log.InfoContext(ctx, "review created", "id", review.ID, "property_id", review.PropertyID)
	publish(ctx, s.DB, s.Events, s.Log, events.ReviewCreated, schemas.NewReview(&review))
	return &review, nil
}

func (s *ReviewService) ListByProperty(ctx context.Context, propertyID uint) ([]models.Review, error) {
	var list []models.Review
	err := s.DB.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("id ASC").
		Find(&list).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to list reviews", err)
	}
	return list, nil
}
