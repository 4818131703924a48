package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PropertyID uint      `gorm:"column:property_id;not null;index:idx_bookings_property_period,priority:1" json:"property_id"`
	UserID     int64     `gorm:"column:user_id;index" json:"user_id"`
	StartDate  time.Time `gorm:"column:start_date;not null;index:idx_bookings_property_period,priority:2" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date;not null;index:idx_bookings_property_period,priority:3" json:"end_date"`
	TotalCost  float64   `gorm:"column:total_cost" json:"total_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
