package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(SessionCreated, "drive-schedule-service", SessionCreatedEvent{SessionID: "s1"})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, SessionCreated, event.Type)
	assert.Equal(t, "drive-schedule-service", event.Source)
	assert.Equal(t, EventVersion, event.Version)
	assert.False(t, event.Timestamp.IsZero())
}

func TestInMemoryEventPublisher_DeliversEnvelope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, pubSub := NewInMemoryEventPublisher("events", logger)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "events")
	require.NoError(t, err)

	event := NewEvent(UserRegistered, "test", UserRegisteredEvent{UserID: "u1", Role: "learner"})
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, UserRegistered, msg.Metadata.Get("event_type"))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
		assert.Equal(t, "1.0", decoded["version"])
		assert.Equal(t, "u1", decoded["data"].(map[string]interface{})["userId"])
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, mock.Publish(context.Background(), NewEvent(VehicleCreated, "test", nil)))
	assert.Len(t, mock.GetPublishedEvents(), 1)

	mock.FailWith(assert.AnError)
	assert.ErrorIs(t, mock.Publish(context.Background(), NewEvent(VehicleCreated, "test", nil)), assert.AnError)
	assert.Len(t, mock.GetPublishedEvents(), 1)
}
