package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventStatusPublished = "published"
	EventStatusFailed    = "failed"
)

// EventLog records every domain event handed to the publisher, whether or not
// the broker accepted it.
type EventLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoutingKey string         `gorm:"type:varchar(100);index;not null" json:"routing_key"`
	Payload    datatypes.JSON `gorm:"column:payload" json:"payload"`
	Status     string         `gorm:"type:varchar(20);index;not null" json:"status"`
	Error      string         `gorm:"type:text" json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
