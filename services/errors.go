package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"rental-backend/events"
	"rental-backend/models"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// isForeignKeyError detects FK violations from any supported driver: gorm's
// translated sentinel first, then raw MySQL error numbers (1451 on parent
// delete, 1452 on child insert) for connections opened without
// TranslateError.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1451 || merr.Number == 1452
	}
	return false
}

// publish hands the event to the broker and records the attempt in
// event_logs. Neither a broker nor a log failure fails the caller: the
// business row is already committed.
func publish(ctx context.Context, db *gorm.DB, pub events.Publisher, log *slog.Logger, routingKey string, payload any) {
	entry := models.EventLog{RoutingKey: routingKey, Status: models.EventStatusPublished}
	if raw, err := json.Marshal(payload); err == nil {
		entry.Payload = datatypes.JSON(raw)
	}

	if pub != nil {
		if err := pub.Publish(ctx, routingKey, payload); err != nil {
			log.WarnContext(ctx, "event publish failed", "routing_key", routingKey, "error", err)
			entry.Status = models.EventStatusFailed
			entry.Error = err.Error()
		}
	}

	if db == nil {
		return
	}
	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.WarnContext(ctx, "event log write failed", "routing_key", routingKey, "error", err)
	}
}

func loggerOrDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
