package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type reminderQueue interface {
	Consume(ctx context.Context, out chan<- queue.ReminderMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.ReminderMessage, strategy retry.Strategy)
}

type adherenceChecker interface {
	HasTakenToday(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Dispatcher consumes decided reminders from the queue and delivers them
// through a pool of workers. Right before delivery each worker re-checks
// adherence and drops the reminder if the user has logged medication since
// it was enqueued.
type Dispatcher struct {
	queue     reminderQueue
	handler   messageHandler
	adherence adherenceChecker
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(q reminderQueue, h messageHandler, a adherenceChecker) *Dispatcher {
	return &Dispatcher{
		queue:     q,
		handler:   h,
		adherence: a,
	}
}

// Run consumes the reminder queue with workerCount workers until ctx is
// cancelled.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.ReminderMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					taken, err := d.adherence.HasTakenToday(ctx, msg.UserID)
					if err != nil {
						zlog.Logger.Printf("failed to check adherence for %s: %v", msg.UserID, err)
						continue
					}

					if taken {
						zlog.Logger.Printf("user %s already took medication, dropping reminder %s", msg.UserID, msg.ID)
						continue
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
