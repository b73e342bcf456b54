package reminder

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/reminder/mock.go -package=mocks

type emailSender interface {
	Send(to, subject, body string) error
}

// Handler delivers a consumed reminder over SMTP, retrying with backoff.
// The reminder core keeps no send state: a message that exhausts its
// attempts is only logged and dead-lettered, never re-decided.
type Handler struct {
	sender emailSender
}

// NewHandler creates a delivery handler.
func NewHandler(sender emailSender) *Handler {
	return &Handler{sender: sender}
}

// HandleMessage attempts to deliver one reminder, backing off between
// attempts according to the strategy.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.ReminderMessage, strategy retry.Strategy) {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			zlog.Logger.Printf("sending reminder %s to %s", msg.ID, msg.To)
			return h.sender.Send(msg.To, msg.Subject, msg.Body)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Printf("reminder %s failed, moving to DLQ: %v", msg.ID, err)
		return
	}

	zlog.Logger.Printf("reminder %s delivered to %s", msg.ID, msg.To)
}
