package notifier

import (
	"context"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// CourseCommittedEvent is published after a course is added to the
// committed store.
type CourseCommittedEvent struct {
	Event     string        `json:"event"`
	Course    models.Course `json:"course"`
	Committed time.Time     `json:"committed_at"`
}

type rabbitMQNotifier struct {
	Log       *zap.Logger
	Channel   publisher
	QueueName string
	now       func() time.Time
}

// NewRabbitMQNotifier declares queueName as a durable queue and publishes
// commit events to it through the default exchange.
func NewRabbitMQNotifier(logger *zap.Logger, conn *amqp091.Connection, queueName string) (contracts.CommitNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, err
	}
	return newRabbitMQNotifier(logger, ch, queueName), nil
}

func newRabbitMQNotifier(logger *zap.Logger, ch publisher, queueName string) *rabbitMQNotifier {
	return &rabbitMQNotifier{
		Log:       logger,
		Channel:   ch,
		QueueName: queueName,
		now:       time.Now,
	}
}

func (n *rabbitMQNotifier) CourseCommitted(ctx context.Context, course models.Course) error {
	body, err := json.Marshal(CourseCommittedEvent{
		Event:     constvars.EventCourseCommitted,
		Course:    course,
		Committed: n.now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = n.Channel.PublishWithContext(ctx, "", n.QueueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		MessageId:    uuid.NewString(),
		Type:         constvars.EventCourseCommitted,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err)
	}

	n.Log.Debug("rabbitMQNotifier.CourseCommitted published",
		zap.String(constvars.LoggingSectionKey, course.Section),
		zap.String("queue", n.QueueName),
	)
	return nil
}
