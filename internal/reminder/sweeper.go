package reminder

import (
	"context"
	"fmt"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/model"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper/mock.go -package=mocks

type userLister interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userReminder interface {
	Remind(ctx context.Context, user model.User) error
}

// Sweeper runs one reminder cycle for every known user. Each user gets its
// own goroutine so one user's hourly countdown never delays another's.
type Sweeper struct {
	users  userLister
	engine userReminder
}

// NewSweeper creates a sweeper.
func NewSweeper(users userLister, engine userReminder) *Sweeper {
	return &Sweeper{users: users, engine: engine}
}

// Run takes a snapshot of all users and applies the reminder engine to each
// independently, returning once every cycle has finished. Only a failed
// user-list read is an error; per-user failures are logged and skipped.
func (s *Sweeper) Run(ctx context.Context) error {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	zlog.Logger.Info().Int("users", len(users)).Msg("starting reminder sweep")

	var wg sync.WaitGroup
	wg.Add(len(users))

	for _, u := range users {
		go func(u model.User) {
			defer wg.Done()

			if err := s.engine.Remind(ctx, u); err != nil {
				zlog.Logger.Warn().Err(err).Str("user_id", u.ID.String()).Msg("skipping user for this sweep")
			}
		}(u)
	}

	wg.Wait()
	zlog.Logger.Info().Msg("reminder sweep finished")

	return nil
}
