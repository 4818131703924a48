package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental-backend/dbtest"
	"rental-backend/events"
	"rental-backend/models"
	"rental-backend/schemas"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	events     *events.Recorder
	properties *PropertyService
	bookings   *BookingService
	reviews    *ReviewService
	messages   *MessageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	rec := &events.Recorder{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		db:         db,
		events:     rec,
		properties: NewPropertyService(db, log),
		bookings:   NewBookingService(db, rec, log),
		reviews:    NewReviewService(db, rec, log),
		messages:   NewMessageService(db, rec, log),
	}
}

func ptr[T any](v T) *T { return &v }

func day(s string) *schemas.Timestamp {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return schemas.NewTimestamp(t)
}

func (f *fixture) createProperty(t *testing.T, title, location string, price float64) *models.Property {
	t.Helper()
	p, err := f.properties.Create(context.Background(), propertyInput(title, location, price))
	require.NoError(t, err)
	return p
}

func propertyInput(title, location string, price float64) schemas.PropertyCreate {
	return schemas.PropertyCreate{
		Title:       ptr(title),
		Description: ptr("Desc"),
		Price:       ptr(price),
		Location:    ptr(location),
		HostID:      ptr(int64(1)),
	}
}

func (f *fixture) createBooking(t *testing.T, propertyID uint, start, end string) *models.Booking {
	t.Helper()
	b, err := f.bookings.Create(context.Background(), bookingInput(propertyID, start, end))
	require.NoError(t, err)
	return b
}

func bookingInput(propertyID uint, start, end string) schemas.BookingCreate {
	return schemas.BookingCreate{
		PropertyID: ptr(propertyID),
		UserID:     ptr(int64(2)),
		StartDate:  day(start),
		EndDate:    day(end),
		TotalCost:  ptr(100.0),
	}
}
