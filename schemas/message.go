package schemas

import (
	"time"

	"rental-backend/models"
)

type MessageCreate struct {
	BookingID *uint      `json:"booking_id" binding:"required"`
	SenderID  *int64     `json:"sender_id" binding:"required"`
	Content   *string    `json:"content" binding:"required"`
	Timestamp *Timestamp `json:"timestamp" binding:"required"`
}

func (m MessageCreate) ToModel() models.Message {
	return models.Message{
		BookingID: deref(m.BookingID),
		SenderID:  deref(m.SenderID),
		Content:   deref(m.Content),
		Timestamp: timeOf(m.Timestamp),
	}
}

type Message struct {
	ID        uint      `json:"id"`
	BookingID uint      `json:"booking_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(m *models.Message) Message {
	return Message{
		ID:        m.ID,
		BookingID: m.BookingID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Timestamp: m.Timestamp.UTC(),
	}
}

func NewMessages(list []models.Message) []Message {
	out := make([]Message, 0, len(list))
	for i := range list {
		out = append(out, NewMessage(&list[i]))
	}
	return out
}
