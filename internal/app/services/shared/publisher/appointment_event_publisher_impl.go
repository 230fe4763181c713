package publisher

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AppointmentEvent is the message body published for every appointment
// lifecycle change.
type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointmentId"`
	DoctorUserID  string    `json:"doctorUserId"`
	CreatorID     string    `json:"creatorId"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type appointmentEventPublisher struct {
	mu      sync.Mutex
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
	Now     func() time.Time
}

// NewAppointmentEventPublisher opens a channel on conn and declares a durable
// queue. A nil connection yields a publisher that only logs.
func NewAppointmentEventPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.AppointmentEventPublisher, error) {
	if conn == nil {
		return &noopEventPublisher{Log: logger}, nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrCreateRabbitMQChannel(err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, exceptions.ErrCreateRabbitMQChannel(err)
	}

	return newAppointmentEventPublisher(channel, queue, logger), nil
}

func newAppointmentEventPublisher(channel amqpChannel, queue string, logger *zap.Logger) *appointmentEventPublisher {
	return &appointmentEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
		Now:     time.Now,
	}
}

func (p *appointmentEventPublisher) Publish(ctx context.Context, eventType string, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := AppointmentEvent{
		Type:          eventType,
		AppointmentID: appointment.ID.Hex(),
		DoctorUserID:  appointment.DoctorUserID.Hex(),
		CreatorID:     appointment.CreatorID.Hex(),
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        appointment.Status,
		OccurredAt:    p.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         eventType,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"request_id":   requestID,
		},
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("appointmentEventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrPublishMessage(err, p.Queue)
	}

	p.Log.Info("appointmentEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}

type noopEventPublisher struct {
	Log *zap.Logger
}

func (p *noopEventPublisher) Publish(ctx context.Context, eventType string, appointment *models.Appointment) error {
	p.Log.Debug("appointment event not published, broker disabled",
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return nil
}
