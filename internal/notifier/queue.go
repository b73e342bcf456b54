package notifier

import (
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/medication-reminder/internal/model"
	"github.com/aliskhannn/medication-reminder/internal/rabbitmq/queue"
)

type reminderPublisher interface {
	Publish(msg queue.ReminderMessage, strategy retry.Strategy) error
}

// Queue hands reminders to the delivery workers via RabbitMQ.
type Queue struct {
	queue    reminderPublisher
	strategy retry.Strategy
}

// NewQueue creates a queue-backed notifier.
func NewQueue(q reminderPublisher, strategy retry.Strategy) *Queue {
	return &Queue{queue: q, strategy: strategy}
}

// Notify enqueues one reminder for asynchronous delivery.
func (n *Queue) Notify(user model.User, subject, body string) error {
	msg := queue.ReminderMessage{
		ID:       uuid.New(),
		UserID:   user.ID,
		To:       user.Email,
		Subject:  subject,
		Body:     body,
		QueuedAt: time.Now(),
	}

	return n.queue.Publish(msg, n.strategy)
}
