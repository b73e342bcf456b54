package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/medication-reminder/internal/mocks/worker"
	"github.com/aliskhannn/medication-reminder/internal/rabbitmq/queue"
)

func runDispatcher(t *testing.T, msgs []queue.ReminderMessage, setup func(handler *mocks.MockmessageHandler, adherence *mocks.MockadherenceChecker, done *sync.WaitGroup)) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mocks.NewMockreminderQueue(ctrl)
	handler := mocks.NewMockmessageHandler(ctrl)
	adherence := mocks.NewMockadherenceChecker(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond, Backoff: 1}

	q.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.ReminderMessage, _ retry.Strategy) error {
			for _, m := range msgs {
				out <- m
			}
			return nil
		})

	// done is released once every message has been fully processed, so the
	// test can cancel the dispatcher without racing the workers.
	var done sync.WaitGroup
	done.Add(len(msgs))
	setup(handler, adherence, &done)

	ctx, cancel := context.WithCancel(context.Background())

	var stopped sync.WaitGroup
	stopped.Add(1)
	go func() {
		defer stopped.Done()
		NewDispatcher(q, handler, adherence).Run(ctx, strategy, 2)
	}()

	done.Wait()
	cancel()
	stopped.Wait()
}

func TestDispatcher_DeliversWhenNotTaken(t *testing.T) {
	msg := queue.ReminderMessage{ID: uuid.New(), UserID: uuid.New(), To: "alisha@example.com"}

	runDispatcher(t, []queue.ReminderMessage{msg}, func(handler *mocks.MockmessageHandler, adherence *mocks.MockadherenceChecker, done *sync.WaitGroup) {
		adherence.EXPECT().HasTakenToday(gomock.Any(), msg.UserID).Return(false, nil)
		handler.EXPECT().HandleMessage(gomock.Any(), msg, gomock.Any()).Do(
			func(_ context.Context, _ queue.ReminderMessage, _ retry.Strategy) {
				done.Done()
			})
	})
}

func TestDispatcher_DropsWhenTaken(t *testing.T) {
	msg := queue.ReminderMessage{ID: uuid.New(), UserID: uuid.New(), To: "alisha@example.com"}

	runDispatcher(t, []queue.ReminderMessage{msg}, func(handler *mocks.MockmessageHandler, adherence *mocks.MockadherenceChecker, done *sync.WaitGroup) {
		// The user logged medication after this reminder was enqueued, so
		// no delivery happens.
		adherence.EXPECT().HasTakenToday(gomock.Any(), msg.UserID).DoAndReturn(
			func(context.Context, uuid.UUID) (bool, error) {
				done.Done()
				return true, nil
			})
	})
}

func TestDispatcher_SkipsOnAdherenceError(t *testing.T) {
	msg := queue.ReminderMessage{ID: uuid.New(), UserID: uuid.New(), To: "alisha@example.com"}

	runDispatcher(t, []queue.ReminderMessage{msg}, func(handler *mocks.MockmessageHandler, adherence *mocks.MockadherenceChecker, done *sync.WaitGroup) {
		adherence.EXPECT().HasTakenToday(gomock.Any(), msg.UserID).DoAndReturn(
			func(context.Context, uuid.UUID) (bool, error) {
				done.Done()
				return false, errors.New("redis down")
			})
	})
}

func TestDispatcher_ProcessesAllMessages(t *testing.T) {
	msgs := []queue.ReminderMessage{
		{ID: uuid.New(), UserID: uuid.New(), To: "a@example.com"},
		{ID: uuid.New(), UserID: uuid.New(), To: "b@example.com"},
		{ID: uuid.New(), UserID: uuid.New(), To: "c@example.com"},
	}

	runDispatcher(t, msgs, func(handler *mocks.MockmessageHandler, adherence *mocks.MockadherenceChecker, done *sync.WaitGroup) {
		adherence.EXPECT().HasTakenToday(gomock.Any(), gomock.Any()).Return(false, nil).Times(len(msgs))
		handler.EXPECT().HandleMessage(gomock.Any(), gomock.Any(), gomock.Any()).Do(
			func(_ context.Context, _ queue.ReminderMessage, _ retry.Strategy) {
				done.Done()
			}).Times(len(msgs))
	})
}
