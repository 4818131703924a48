package models

import "time"

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"column:booking_id;not null;index:idx_messages_booking_sent,priority:1" json:"booking_id"`
	SenderID  int64     `gorm:"column:sender_id;index" json:"sender_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Timestamp time.Time `gorm:"column:sent_at;not null;index:idx_messages_booking_sent,priority:2" json:"timestamp"`

	CreatedAt time.Time `json:"created_at"`

	Booking *Booking `gorm:"foreignKey:BookingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
