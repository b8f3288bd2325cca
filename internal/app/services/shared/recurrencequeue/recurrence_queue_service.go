package recurrencequeue

import (
	"context"
	"fmt"
	"meetingassist-service/internal/app/contracts"
	"meetingassist-service/internal/pkg/constvars"
	"meetingassist-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	ExpansionQueueName   = "meeting_recurrence_expansion_queue"
	ExpansionDLQName     = "meeting_recurrence_expansion_dlq"
	defaultPrefetchCount = 1
)

// ExpansionMessage is the payload published after a template has been
// expanded, so downstream consumers can notify attendees and sync calendars.
type ExpansionMessage struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	GeneratedID []string  `json:"generated_ids"`
	PublishedAt time.Time `json:"published_at"`
}

// Service publishes expansion messages to a durable RabbitMQ queue with
// publisher confirms.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queues, enables confirms and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (contracts.RecurrenceQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queueName := range []string{ExpansionQueueName, ExpansionDLQName} {
		_, err = ch.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = defaultPrefetchCount
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// PublishMeetingExpanded enqueues one message per expanded template and
// waits for the broker confirm.
func (s *Service) PublishMeetingExpanded(ctx context.Context, meetingID string, generatedIDs []string) error {
	s.log.Info("RecurrenceQueue.PublishMeetingExpanded called",
		zap.String(constvars.LoggingMeetingIDKey, meetingID),
		zap.String(constvars.LoggingQueueNameKey, ExpansionQueueName),
	)

	body, err := json.Marshal(ExpansionMessage{
		ID:          uuid.NewString(),
		MeetingID:   meetingID,
		GeneratedID: generatedIDs,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", ExpansionQueueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, ExpansionQueueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), ExpansionQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), ExpansionQueueName)
	}
	return nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}
