package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/drive-schedule-service/internal/events"
)

// EventEmitter publishes domain events after a commit. Failures are logged
// and never reach the caller.
type EventEmitter struct {
	publisher events.EventPublisher
	source    string
	logger    *slog.Logger
}

// NewEventEmitter returns an emitter; a nil publisher makes it a no-op
func NewEventEmitter(publisher events.EventPublisher, source string, logger *slog.Logger) *EventEmitter {
	return &EventEmitter{
		publisher: publisher,
		source:    source,
		logger:    logger,
	}
}

func (e *EventEmitter) Emit(ctx context.Context, eventType string, data interface{}) {
	if e == nil || e.publisher == nil {
		return
	}

	event := events.NewEvent(eventType, e.source, data)
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn("Failed to publish event", "event_type", eventType, "event_id", event.ID, "error", err)
	}
}

func (e *EventEmitter) Close() error {
	if e == nil || e.publisher == nil {
		return nil
	}
	return e.publisher.Close()
}
