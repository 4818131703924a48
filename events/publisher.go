package events

import "context"

const (
	BookingCreated = "booking.created"
	ReviewCreated  = "review.created"
	MessageCreated = "message.created"
)

// Publisher delivers domain events after the owning transaction committed.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

func (NopPublisher) Close() error { return nil }
