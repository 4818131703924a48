package models

import "time"

type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"column:property_id;not null;index" json:"property_id"`
	UserID     int64  `gorm:"column:user_id;index" json:"user_id"`
	Rating     int    `json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
