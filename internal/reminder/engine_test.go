package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/medication-reminder/internal/mocks/reminder"
	"github.com/aliskhannn/medication-reminder/internal/model"
)

// fakeClock starts at a fixed instant and advances by exactly the slept
// duration, so countdown cycles run instantly in tests.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func testUser() model.User {
	return model.User{
		ID:      uuid.New(),
		Name:    "Alisha",
		Email:   "alisha@example.com",
		MedName: "Ibuprofen",
		Dosage:  "200mg",
		MedTime: "08:00",
	}
}

func setupEngine(t *testing.T, at time.Time) (*Engine, *mocks.MockadherenceChecker, *mocks.MockNotifier, *fakeClock) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	adherence := mocks.NewMockadherenceChecker(ctrl)
	notify := mocks.NewMockNotifier(ctrl)
	clock := &fakeClock{now: at}

	return NewEngine(adherence, notify, clock), adherence, notify, clock
}

func TestEngine_Remind_AlreadyTaken_NoNotifications(t *testing.T) {
	user := testUser()
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)
	engine, adherence, _, _ := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(true, nil)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)
}

func TestEngine_Remind_Countdown_ThreeHours(t *testing.T) {
	user := testUser()
	// 05:00 against an 08:00 dose: three whole hours remain.
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)
	engine, adherence, notify, clock := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil).Times(4)

	gomock.InOrder(
		notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 3)).Return(nil),
		notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 2)).Return(nil),
		notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 1)).Return(nil),
	)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)

	// One-hour waits between sends, none after the last one.
	assert.Equal(t, []time.Duration{time.Hour, time.Hour}, clock.sleeps)
}

func TestEngine_Remind_StopsWhenLoggedMidCountdown(t *testing.T) {
	user := testUser()
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)
	engine, adherence, notify, _ := setupEngine(t, at)

	gomock.InOrder(
		adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil),
		adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil),
		notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 3)).Return(nil),
		// User logs medication during the first wait: the next check
		// halts the countdown, nothing else is sent.
		adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(true, nil),
	)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)
}

func TestEngine_Remind_FinalReminder_UnderAnHour(t *testing.T) {
	user := testUser()
	// 07:30 against an 08:00 dose: no whole hour remains.
	at := time.Date(2025, 3, 10, 7, 30, 0, 0, time.Local)
	engine, adherence, notify, clock := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil)
	notify.EXPECT().Notify(user, SubjectFinal, finalBody(user)).Return(nil)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, clock.sleeps)
}

func TestEngine_Remind_ExactlyOneHour_IsLastCountdownStep(t *testing.T) {
	user := testUser()
	// Exactly one hour left counts as hour 1 of the countdown, not the
	// final reminder.
	at := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	engine, adherence, notify, clock := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil).Times(2)
	notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 1)).Return(nil)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, clock.sleeps)
}

func TestEngine_Remind_ExactlyAtScheduledTime_SendsFinal(t *testing.T) {
	user := testUser()
	// now == scheduled time: today's occurrence still stands, zero remains.
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	engine, adherence, notify, _ := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil)
	notify.EXPECT().Notify(user, SubjectFinal, finalBody(user)).Return(nil)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)
}

func TestEngine_Remind_SendFailure_DoesNotAbortCycle(t *testing.T) {
	user := testUser()
	at := time.Date(2025, 3, 10, 6, 0, 0, 0, time.Local)
	engine, adherence, notify, _ := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil).Times(3)

	gomock.InOrder(
		notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 2)).Return(errors.New("smtp down")),
		notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 1)).Return(nil),
	)

	err := engine.Remind(context.Background(), user)
	require.NoError(t, err)
}

func TestEngine_Remind_InvalidMedTime(t *testing.T) {
	user := testUser()
	user.MedTime = "25:99"
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)
	engine, _, _, _ := setupEngine(t, at)

	err := engine.Remind(context.Background(), user)
	assert.Error(t, err)
}

func TestEngine_Remind_AdherenceQueryFails(t *testing.T) {
	user := testUser()
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)
	engine, adherence, _, _ := setupEngine(t, at)

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, errors.New("db error"))

	err := engine.Remind(context.Background(), user)
	assert.Error(t, err)
}

func TestEngine_Remind_CancelledDuringWait(t *testing.T) {
	user := testUser()
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adherence := mocks.NewMockadherenceChecker(ctrl)
	notify := mocks.NewMockNotifier(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	engine := NewEngine(adherence, notify, cancellingClock{now: at, cancel: cancel})

	adherence.EXPECT().HasTakenToday(gomock.Any(), user.ID).Return(false, nil).Times(2)
	notify.EXPECT().Notify(user, SubjectCountdown, countdownBody(user, 3)).Return(nil)

	err := engine.Remind(ctx, user)
	assert.ErrorIs(t, err, context.Canceled)
}

// cancellingClock cancels its context on the first sleep, simulating a
// shutdown mid-countdown.
type cancellingClock struct {
	now    time.Time
	cancel context.CancelFunc
}

func (c cancellingClock) Now() time.Time { return c.now }

func (c cancellingClock) Sleep(ctx context.Context, _ time.Duration) error {
	c.cancel()
	return ctx.Err()
}

func TestEngine_RemindNow(t *testing.T) {
	user := testUser()
	at := time.Date(2025, 3, 10, 5, 0, 0, 0, time.Local)
	engine, _, notify, _ := setupEngine(t, at)

	notify.EXPECT().Notify(user, SubjectCountdown, gomock.Any()).Return(nil)

	require.NoError(t, engine.RemindNow(user))
}
