package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"rental-backend/apperrors"
	"rental-backend/events"
	"rental-backend/models"
	"rental-backend/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCreate(t *testing.T) {
	f := newFixture(t)
	p := f.createProperty(t, "Test", "City", 50)

	b, err := f.bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-01", "2025-05-03"))
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, p.ID, b.PropertyID)
	assert.Equal(t, int64(2), b.UserID)
	assert.Equal(t, 100.0, b.TotalCost)

	got, err := f.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(b.StartDate))
	assert.True(t, got.EndDate.Equal(b.EndDate))
}

func TestBookingOverlapRejected(t *testing.T) {
	f := newFixture(t)
	p := f.createProperty(t, "Test", "City", 50)
	existing := f.createBooking(t, p.ID, "2025-05-01", "2025-05-03")

	_, err := f.bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-02", "2025-05-04"))
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Property is already booked for these dates", appErr.Message)
	assert.Equal(t, existing.ID, appErr.Details["booking_id"])

	var count int64
	require.NoError(t, f.db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBookingOverlapVariants(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		conflict   bool
	}{
		{"boundary touch after", "2025-05-03", "2025-05-05", false},
		{"boundary touch before", "2025-04-28", "2025-05-01", false},
		{"same interval", "2025-05-01", "2025-05-03", true},
		{"enclosing", "2025-04-30", "2025-05-04", true},
		{"enclosed", "2025-05-01", "2025-05-02", true},
		{"overlap at start", "2025-04-30", "2025-05-02", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			p := f.createProperty(t, "Test", "City", 50)
			f.createBooking(t, p.ID, "2025-05-01", "2025-05-03")

			_, err := f.bookings.Create(context.Background(), bookingInput(p.ID, tt.start, tt.end))
			if tt.conflict {
				assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict), "expected conflict, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingOtherPropertyDoesNotConflict(t *testing.T) {
	f := newFixture(t)
	a := f.createProperty(t, "A", "City", 50)
	b := f.createProperty(t, "B", "City", 50)
	f.createBooking(t, a.ID, "2025-05-01", "2025-05-03")

	_, err := f.bookings.Create(context.Background(), bookingInput(b.ID, "2025-05-01", "2025-05-03"))
	assert.NoError(t, err)
}

func TestBookingMissingProperty(t *testing.T) {
	f := newFixture(t)

	_, err := f.bookings.Create(context.Background(), bookingInput(404, "2025-05-01", "2025-05-03"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestBookingRequiresEndAfterStart(t *testing.T) {
	f := newFixture(t)
	p := f.createProperty(t, "Test", "City", 50)

	_, err := f.bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-03", "2025-05-03"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	_, err = f.bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-04", "2025-05-03"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestBookingGetMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.bookings.GetByID(context.Background(), 1)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestBookingPublishesEvent(t *testing.T) {
	f := newFixture(t)
	p := f.createProperty(t, "Test", "City", 50)
	b := f.createBooking(t, p.ID, "2025-05-01", "2025-05-03")

	_, err := f.bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-02", "2025-05-04"))
	require.Error(t, err)

	got := f.events.Events()
	require.Len(t, got, 1, "rejected bookings must not publish")
	assert.Equal(t, events.BookingCreated, got[0].RoutingKey)
	payload, ok := got[0].Payload.(schemas.Booking)
	require.True(t, ok)
	assert.Equal(t, b.ID, payload.ID)
}

func TestBookingSucceedsWhenPublishFails(t *testing.T) {
	f := newFixture(t)
	f.events.Err = assert.AnError
	p := f.createProperty(t, "Test", "City", 50)

	b, err := f.bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-01", "2025-05-03"))
	require.NoError(t, err)
	assert.NotZero(t, b.ID)

	var entry models.EventLog
	require.NoError(t, f.db.Where("routing_key = ?", events.BookingCreated).First(&entry).Error)
	assert.Equal(t, models.EventStatusFailed, entry.Status)
	assert.Equal(t, assert.AnError.Error(), entry.Error)
}

func TestBookingEventLogged(t *testing.T) {
	f := newFixture(t)
	p := f.createProperty(t, "Test", "City", 50)
	b := f.createBooking(t, p.ID, "2025-05-01", "2025-05-03")

	var logs []models.EventLog
	require.NoError(t, f.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.EventStatusPublished, logs[0].Status)

	var payload schemas.Booking
	require.NoError(t, json.Unmarshal(logs[0].Payload, &payload))
	assert.Equal(t, b.ID, payload.ID)
	assert.Equal(t, p.ID, payload.PropertyID)
}
