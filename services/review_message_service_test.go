package services

import (
	"context"
	"testing"
	"time"

	"rental-backend/apperrors"
	"rental-backend/events"
	"rental-backend/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createProperty(t, "Reviewed", "City", 50)
	other := f.createProperty(t, "Other", "City", 50)

	first, err := f.reviews.Create(ctx, schemas.ReviewCreate{
		PropertyID: ptr(p.ID),
		UserID:     ptr(int64(3)),
		Rating:     ptr(5),
		Comment:    ptr("Great stay"),
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = f.reviews.Create(ctx, schemas.ReviewCreate{
		PropertyID: ptr(p.ID),
		UserID:     ptr(int64(4)),
		Rating:     ptr(-2),
		Comment:    ptr("Ratings are not range checked"),
	})
	require.NoError(t, err)

	_, err = f.reviews.Create(ctx, schemas.ReviewCreate{
		PropertyID: ptr(other.ID),
		UserID:     ptr(int64(4)),
		Rating:     ptr(3),
		Comment:    ptr("Fine"),
	})
	require.NoError(t, err)

	list, err := f.reviews.ListByProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Great stay", list[0].Comment)
	assert.Equal(t, -2, list[1].Rating)

	assert.Len(t, f.events.Events(), 3)
	assert.Equal(t, events.ReviewCreated, f.events.Events()[0].RoutingKey)
}

func TestReviewListEmpty(t *testing.T) {
	f := newFixture(t)

	list, err := f.reviews.ListByProperty(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReviewMissingProperty(t *testing.T) {
	f := newFixture(t)

	_, err := f.reviews.Create(context.Background(), schemas.ReviewCreate{
		PropertyID: ptr(uint(9)),
		UserID:     ptr(int64(1)),
		Rating:     ptr(4),
		Comment:    ptr("?"),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	_, err = f.reviews.Create(context.Background(), schemas.ReviewCreate{
		UserID:  ptr(int64(1)),
		Rating:  ptr(4),
		Comment: ptr("no property"),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestMessagesOrderedByTimestamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.createProperty(t, "Chatty", "City", 50)
	b := f.createBooking(t, p.ID, "2025-05-01", "2025-05-03")
	base := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	for _, offset := range []int{3, 1, 2} {
		_, err := f.messages.Create(ctx, schemas.MessageCreate{
			BookingID: ptr(b.ID),
			SenderID:  ptr(int64(offset)),
			Content:   ptr("msg"),
			Timestamp: schemas.NewTimestamp(base.Add(time.Duration(offset) * time.Hour)),
		})
		require.NoError(t, err)
	}

	list, err := f.messages.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Timestamp.Before(list[i-1].Timestamp), "messages out of order at %d", i)
	}
	assert.Equal(t, int64(1), list[0].SenderID)
	assert.Equal(t, int64(3), list[2].SenderID)
}

func TestMessageMissingBooking(t *testing.T) {
	f := newFixture(t)

	_, err := f.messages.Create(context.Background(), schemas.MessageCreate{
		BookingID: ptr(uint(31)),
		SenderID:  ptr(int64(1)),
		Content:   ptr("hello"),
		Timestamp: schemas.NewTimestamp(time.Now()),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestMessagesForUnknownBookingIsEmpty(t *testing.T) {
	f := newFixture(t)

	list, err := f.messages.ListByBooking(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, list)
}
