// Package reminder decides whether, when and how often a user is notified
// about an upcoming medication time, and stops the moment adherence is
// observed.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/model"
	"github.com/aliskhannn/medication-reminder/internal/schedule"
)

//go:generate mockgen -source=engine.go -destination=../mocks/reminder/mock.go -package=mocks

// Reminder email subjects.
const (
	SubjectCountdown = "Medication Reminder"
	SubjectFinal     = "Time to Take Your Medication!"
)

type adherenceChecker interface {
	HasTakenToday(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Notifier delivers one reminder to a user. Delivery is best-effort: the
// engine logs failures and proceeds as though the reminder was issued.
type Notifier interface {
	Notify(user model.User, subject, body string) error
}

// Engine runs the reminder cycle for a single user.
type Engine struct {
	adherence adherenceChecker
	notifier  Notifier
	clock     Clock
}

// NewEngine creates a reminder engine.
func NewEngine(adherence adherenceChecker, notifier Notifier, clock Clock) *Engine {
	return &Engine{adherence: adherence, notifier: notifier, clock: clock}
}

// Remind runs one reminder cycle for the user.
//
// If more than a whole hour remains before the next scheduled medication
// time, it counts down hourly: re-check adherence, send a countdown
// reminder, wait an hour. Otherwise it sends a single final reminder.
// Either way nothing is sent after the scheduled moment passes within this
// cycle, and the cycle aborts the moment adherence is observed.
//
// A returned error means the user was skipped (bad medication time or a
// failed adherence query); it never reflects a failed send.
func (e *Engine) Remind(ctx context.Context, user model.User) error {
	tod, err := schedule.ParseTimeOfDay(user.MedTime)
	if err != nil {
		return fmt.Errorf("invalid medication time %q: %w", user.MedTime, err)
	}

	now := e.clock.Now()
	next := schedule.NextOccurrence(tod, now)
	remaining := next.Sub(now)
	hoursUntil := schedule.HoursUntil(now, next)

	taken, err := e.adherence.HasTakenToday(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("check adherence: %w", err)
	}
	if taken {
		zlog.Logger.Info().Str("user", user.Name).Msg("already took medication, skipping reminders")
		return nil
	}

	if hoursUntil > 0 {
		// Hourly countdown until the scheduled time.
		for hour := hoursUntil; hour >= 1; hour-- {
			taken, err := e.adherence.HasTakenToday(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("check adherence: %w", err)
			}
			if taken {
				zlog.Logger.Info().Str("user", user.Name).Msg("took medication, stopping reminders")
				return nil
			}

			e.send(user, SubjectCountdown, countdownBody(user, hour))

			if hour > 1 {
				if err := e.clock.Sleep(ctx, time.Hour); err != nil {
					return fmt.Errorf("countdown interrupted: %w", err)
				}
			}
		}
	} else if remaining <= time.Hour {
		// The scheduled time is at most an hour away: one final reminder.
		e.send(user, SubjectFinal, finalBody(user))
	}

	return nil
}

// RemindNow sends a single immediate reminder, bypassing the schedule.
// Backs the manual reminder endpoint.
func (e *Engine) RemindNow(user model.User) error {
	body := fmt.Sprintf("Hi %s, time for your %s!", user.Name, user.MedName)
	if err := e.notifier.Notify(user, SubjectCountdown, body); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	return nil
}

func (e *Engine) send(user model.User, subject, body string) {
	if err := e.notifier.Notify(user, subject, body); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to send reminder")
	}
}

func countdownBody(user model.User, hour int) string {
	return fmt.Sprintf(
		"Hi %s, your next medication (%s - %s) is scheduled for %s.\n\n"+
			"%d hour(s) left. Please prepare to take your medication on time!",
		user.Name, user.MedName, user.Dosage, user.MedTime, hour,
	)
}

func finalBody(user model.User) string {
	return fmt.Sprintf(
		"Hi %s!\n\nIt's time to take your %s (%s).\nPlease stay consistent with your routine.",
		user.Name, user.MedName, user.Dosage,
	)
}
