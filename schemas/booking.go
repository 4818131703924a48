package schemas

import (
	"time"

	"rental-backend/models"
)

type BookingCreate struct {
	PropertyID *uint      `json:"property_id" binding:"required"`
	UserID     *int64     `json:"user_id" binding:"required"`
	StartDate  *Timestamp `json:"start_date" binding:"required"`
	EndDate    *Timestamp `json:"end_date" binding:"required"`
	TotalCost  *float64   `json:"total_cost" binding:"required,gte=0"`
}

func (b BookingCreate) ToModel() models.Booking {
	return models.Booking{
		PropertyID: deref(b.PropertyID),
		UserID:     deref(b.UserID),
		StartDate:  timeOf(b.StartDate),
		EndDate:    timeOf(b.EndDate),
		TotalCost:  deref(b.TotalCost),
	}
}

type Booking struct {
	ID         uint      `json:"id"`
	PropertyID uint      `json:"property_id"`
	UserID     int64     `json:"user_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalCost  float64   `json:"total_cost"`
}

func NewBooking(m *models.Booking) Booking {
	return Booking{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		UserID:     m.UserID,
		StartDate:  m.StartDate.UTC(),
		EndDate:    m.EndDate.UTC(),
		TotalCost:  m.TotalCost,
	}
}

func timeOf(ts *Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.Time.UTC()
}
