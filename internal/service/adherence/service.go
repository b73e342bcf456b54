package adherence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/model"
	"github.com/aliskhannn/medication-reminder/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/adherence/mock.go -package=mocks

const cachedTaken = "taken"

type logRepository interface {
	CreateLog(ctx context.Context, entry model.LogEntry) (uuid.UUID, error)
	HasActionSince(ctx context.Context, userID uuid.UUID, action string, since time.Time) (bool, error)
	CountActionSince(ctx context.Context, userID uuid.UUID, action string, since time.Time) (int, error)
	ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]model.LogEntry, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service answers adherence questions over the append-only log.
//
// "Taken today" facts are cached in redis under a per-day key. Only positive
// answers are cached: once a user has logged medication the fact holds for
// the rest of the day, while a cached negative would hide log entries written
// concurrently by the logging API.
type Service struct {
	repo     logRepository
	cache    cache
	strategy retry.Strategy
}

// NewService creates an adherence service.
func NewService(repo logRepository, cache cache, strategy retry.Strategy) *Service {
	return &Service{repo: repo, cache: cache, strategy: strategy}
}

func takenKey(userID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("adherence:%s:%s", userID, day.Format("2006-01-02"))
}

// HasTakenToday reports whether the user logged a medication action within
// the current adherence window (local midnight through now). The window is
// re-derived on every call, so it resets implicitly at midnight.
func (s *Service) HasTakenToday(ctx context.Context, userID uuid.UUID) (bool, error) {
	now := time.Now()
	key := takenKey(userID, now)

	val, err := s.cache.GetWithRetry(ctx, s.strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to get adherence from cache")
	}
	if err == nil && val == cachedTaken {
		return true, nil
	}

	taken, err := s.repo.HasActionSince(ctx, userID, model.ActionMedication, schedule.StartOfDay(now))
	if err != nil {
		return false, fmt.Errorf("check adherence: %w", err)
	}

	if taken {
		if err := s.cache.SetWithRetry(ctx, s.strategy, key, cachedTaken); err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to cache adherence")
		}
	}

	return taken, nil
}

// LogAction appends a user action to the log. A medication action also
// primes the adherence cache so in-flight reminder countdowns observe it
// on their next check.
func (s *Service) LogAction(ctx context.Context, userID uuid.UUID, action string) (uuid.UUID, error) {
	now := time.Now()

	id, err := s.repo.CreateLog(ctx, model.LogEntry{
		UserID:    userID,
		Action:    action,
		Timestamp: now,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("log action: %w", err)
	}

	if action == model.ActionMedication {
		if err := s.cache.SetWithRetry(ctx, s.strategy, takenKey(userID, now), cachedTaken); err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to cache adherence")
		}
	}

	return id, nil
}

// History returns all log entries for a user, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]model.LogEntry, error) {
	entries, err := s.repo.ListLogsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	return entries, nil
}

// WaterCountToday returns how many water actions the user logged today.
func (s *Service) WaterCountToday(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.repo.CountActionSince(ctx, userID, model.ActionWater, schedule.StartOfDay(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("count water actions: %w", err)
	}

	return count, nil
}
