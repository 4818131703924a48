package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"rental-backend/apperrors"
	"rental-backend/config"
	"rental-backend/events"
	"rental-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentOverlappingBookings(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := config.ConnectDatabase(&config.Config{
		DBDriver:     config.DriverSQLite,
		DBLogLevel:   "silent",
		SQLitePath:   filepath.Join(t.TempDir(), "bookings.db"),
		MaxOpenConns: 25,
		MaxIdleConns: 25,
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	properties := NewPropertyService(db, log)
	bookings := NewBookingService(db, &events.Recorder{}, log)

	p, err := properties.Create(context.Background(), propertyInput("Contested", "City", 50))
	require.NoError(t, err)

	const workers = 20
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, workers)
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = bookings.Create(context.Background(), bookingInput(p.ID, "2025-05-01", "2025-05-03"))
		}()
	}
	close(start)
	wg.Wait()

	var created, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case apperrors.HasCode(err, apperrors.CodeConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)

	var stored int64
	require.NoError(t, db.Model(&models.Booking{}).Where("property_id = ?", p.ID).Count(&stored).Error)
	assert.Equal(t, int64(1), stored)
}
