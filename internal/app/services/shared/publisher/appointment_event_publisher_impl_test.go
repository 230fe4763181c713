package publisher

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type recordingChannel struct {
	queue    string
	messages []amqp091.Publishing
	err      error
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.queue = key
	c.messages = append(c.messages, msg)
	return nil
}

func TestAppointmentEventPublisher(t *testing.T) {
	appointment := &models.Appointment{
		ID:           primitive.NewObjectID(),
		DoctorUserID: primitive.NewObjectID(),
		CreatorID:    primitive.NewObjectID(),
		Date:         time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC),
		Time:         "9:00 am",
		Status:       constvars.AppointmentStatusPending,
	}
	occurredAt := time.Date(2024, 5, 30, 1, 2, 3, 0, time.UTC)

	t.Run("Publishes a persistent JSON message", func(t *testing.T) {
		channel := &recordingChannel{}
		publisher := newAppointmentEventPublisher(channel, "appointment_events", zap.NewNop())
		publisher.Now = func() time.Time { return occurredAt }

		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
		require.NoError(t, publisher.Publish(ctx, constvars.AppointmentEventCreated, appointment))

		require.Len(t, channel.messages, 1)
		message := channel.messages[0]
		assert.Equal(t, "appointment_events", channel.queue)
		assert.Equal(t, amqp091.Persistent, message.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, message.ContentType)
		assert.Equal(t, "req-1", message.Headers["request_id"])

		var event AppointmentEvent
		require.NoError(t, json.Unmarshal(message.Body, &event))
		assert.Equal(t, constvars.AppointmentEventCreated, event.Type)
		assert.Equal(t, appointment.ID.Hex(), event.AppointmentID)
		assert.Equal(t, "9:00 am", event.Time)
		assert.True(t, occurredAt.Equal(event.OccurredAt))
	})

	t.Run("Broker failure is returned", func(t *testing.T) {
		channel := &recordingChannel{err: errors.New("channel closed")}
		publisher := newAppointmentEventPublisher(channel, "appointment_events", zap.NewNop())

		err := publisher.Publish(context.Background(), constvars.AppointmentEventCancelled, appointment)
		assert.Error(t, err)
	})

	t.Run("Nil connection publishes nothing", func(t *testing.T) {
		publisher, err := NewAppointmentEventPublisher(nil, "appointment_events", zap.NewNop())
		require.NoError(t, err)
		assert.NoError(t, publisher.Publish(context.Background(), constvars.AppointmentEventDone, appointment))
	})
}
