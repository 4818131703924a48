package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"rental-backend/apperrors"
	"rental-backend/models"
	"rental-backend/schemas"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultListLimit = 10
	likeEscape       = "!"
)

type PropertyService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewPropertyService(db *gorm.DB, log *slog.Logger) *PropertyService {
	return &PropertyService{DB: db, Log: loggerOrDefault(log)}
}

func (s *PropertyService) Create(ctx context.Context, in schemas.PropertyCreate) (*models.Property, error) {
	property := in.ToModel()
	if err := s.DB.WithContext(ctx).Create(&property).Error; err != nil {
		s.Log.ErrorContext(ctx, "failed to create property", "error", err)
		return nil, apperrors.Internal("Failed to create property", err)
	}
	s.Log.InfoContext(ctx, "property created", "id", property.ID, "host_id", property.HostID)
	return &property, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.WithContext(ctx).First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundWithID("Property", id)
		}
		return nil, apperrors.Internal("Failed to retrieve property", err)
	}
	return &property, nil
}

func (s *PropertyService) List(ctx context.Context, skip, limit int) ([]models.Property, error) {
	if skip < 0 || limit < 0 {
		return nil, apperrors.Validation("skip and limit must not be negative", map[string]any{"skip": skip, "limit": limit})
	}

	var list []models.Property
	if err := s.DB.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, apperrors.Internal("Failed to list properties", err)
	}
	return list, nil
}

// Update applies only the supplied columns. Keys outside
// models.PropertyColumns are rejected so callers cannot touch id or
// timestamps.
func (s *PropertyService) Update(ctx context.Context, id uint, fields map[string]any) (*models.Property, error) {
	for key := range fields {
		if !slices.Contains(models.PropertyColumns, key) {
			return nil, apperrors.Validation("Unknown property field", map[string]any{"field": key})
		}
	}
	if price, ok := fields["price"].(float64); ok && price < 0 {
		return nil, apperrors.Validation("price must be greater than or equal to 0", map[string]any{"field": "price"})
	}

	var property models.Property
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundWithID("Property", id)
			}
			return apperrors.Internal("Failed to retrieve property", err)
		}

		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&models.Property{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return apperrors.Internal("Failed to update property", err)
		}
		if err := tx.First(&property, id).Error; err != nil {
			return apperrors.Internal("Failed to reload property", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "property updated", "id", id, "fields", len(fields))
	return &property, nil
}

// Delete removes a property and returns it. Properties still referenced by
// bookings or reviews are kept and a Conflict is returned.
func (s *PropertyService) Delete(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundWithID("Property", id)
			}
			return apperrors.Internal("Failed to retrieve property", err)
		}

		var bookings, reviews int64
		if err := tx.Model(&models.Booking{}).Where("property_id = ?", id).Count(&bookings).Error; err != nil {
			return apperrors.Internal("Failed to check property bookings", err)
		}
		if err := tx.Model(&models.Review{}).Where("property_id = ?", id).Count(&reviews).Error; err != nil {
			return apperrors.Internal("Failed to check property reviews", err)
		}
		if bookings > 0 || reviews > 0 {
			return apperrors.Conflict("Property has bookings or reviews and cannot be deleted").
				WithDetails(map[string]any{"bookings": bookings, "reviews": reviews})
		}

		if err := tx.Delete(&models.Property{}, id).Error; err != nil {
			if isForeignKeyError(err) {
				return apperrors.Conflict("Property has bookings or reviews and cannot be deleted")
			}
			return apperrors.Internal("Failed to delete property", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "property deleted", "id", id)
	return &property, nil
}

// Search returns every property matching all supplied filters. A filter is
// applied when the caller supplied it, so min_price=0 still filters.
func (s *PropertyService) Search(ctx context.Context, q schemas.PropertySearchQuery) ([]models.Property, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, apperrors.Validation("min_price must not exceed max_price", map[string]any{
			"min_price": *q.MinPrice,
			"max_price": *q.MaxPrice,
		})
	}

	query := s.DB.WithContext(ctx).Model(&models.Property{})
	if q.Location != nil && *q.Location != "" {
		pattern := "%" + escapeLike(strings.ToLower(*q.Location)) + "%"
		query = query.Where(fmt.Sprintf("LOWER(location) LIKE ? ESCAPE '%s'", likeEscape), pattern)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}

	var list []models.Property
	if err := query.Order("id ASC").Find(&list).Error; err != nil {
		return nil, apperrors.Internal("Failed to search properties", err)
	}
	return list, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}
