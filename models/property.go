package models

import "time"

type Property struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"column:price" json:"price"`
	Location    string    `gorm:"size:255;index" json:"location"`
	HostID      int64     `gorm:"column:host_id;index" json:"host_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PropertyColumns lists the columns a property update may touch.
var PropertyColumns = []string{"title", "description", "price", "location", "host_id"}
