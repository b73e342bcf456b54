package adherence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/medication-reminder/internal/mocks/service/adherence"
	"github.com/aliskhannn/medication-reminder/internal/model"
)

func setupService(t *testing.T) (*Service, *mocks.MocklogRepository, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMocklogRepository(ctrl)
	cache := mocks.NewMockcache(ctrl)

	return NewService(repo, cache, retry.Strategy{}), repo, cache
}

func TestService_HasTakenToday_CacheHit(t *testing.T) {
	svc, _, cache := setupService(t)

	userID := uuid.New()
	key := takenKey(userID, time.Now())

	cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, key).Return(cachedTaken, nil)

	taken, err := svc.HasTakenToday(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestService_HasTakenToday_CacheMiss_NotTaken(t *testing.T) {
	svc, repo, cache := setupService(t)

	userID := uuid.New()

	cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, gomock.Any()).Return("", redis.Nil)
	repo.EXPECT().HasActionSince(gomock.Any(), userID, model.ActionMedication, gomock.Any()).Return(false, nil)

	taken, err := svc.HasTakenToday(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestService_HasTakenToday_CacheMiss_TakenPrimesCache(t *testing.T) {
	svc, repo, cache := setupService(t)

	userID := uuid.New()
	key := takenKey(userID, time.Now())

	cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, key).Return("", redis.Nil)
	repo.EXPECT().HasActionSince(gomock.Any(), userID, model.ActionMedication, gomock.Any()).Return(true, nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, key, cachedTaken).Return(nil)

	taken, err := svc.HasTakenToday(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestService_HasTakenToday_CacheUnavailable_FallsBackToRepo(t *testing.T) {
	svc, repo, cache := setupService(t)

	userID := uuid.New()

	cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, gomock.Any()).Return("", errors.New("redis down"))
	repo.EXPECT().HasActionSince(gomock.Any(), userID, model.ActionMedication, gomock.Any()).Return(false, nil)

	taken, err := svc.HasTakenToday(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestService_HasTakenToday_RepoFails(t *testing.T) {
	svc, repo, cache := setupService(t)

	userID := uuid.New()

	cache.EXPECT().GetWithRetry(gomock.Any(), retry.Strategy{}, gomock.Any()).Return("", redis.Nil)
	repo.EXPECT().HasActionSince(gomock.Any(), userID, model.ActionMedication, gomock.Any()).Return(false, errors.New("db error"))

	_, err := svc.HasTakenToday(context.Background(), userID)
	assert.Error(t, err)
}

func TestService_LogAction_MedicationPrimesCache(t *testing.T) {
	svc, repo, cache := setupService(t)

	userID := uuid.New()
	entryID := uuid.New()
	key := takenKey(userID, time.Now())

	repo.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(entryID, nil)
	cache.EXPECT().SetWithRetry(gomock.Any(), retry.Strategy{}, key, cachedTaken).Return(nil)

	id, err := svc.LogAction(context.Background(), userID, model.ActionMedication)
	require.NoError(t, err)
	assert.Equal(t, entryID, id)
}

func TestService_LogAction_WaterDoesNotTouchCache(t *testing.T) {
	svc, repo, _ := setupService(t)

	userID := uuid.New()
	entryID := uuid.New()

	repo.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(entryID, nil)

	id, err := svc.LogAction(context.Background(), userID, model.ActionWater)
	require.NoError(t, err)
	assert.Equal(t, entryID, id)
}

func TestService_LogAction_RepoFails(t *testing.T) {
	svc, repo, _ := setupService(t)

	userID := uuid.New()

	repo.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db error"))

	_, err := svc.LogAction(context.Background(), userID, model.ActionMedication)
	assert.Error(t, err)
}

func TestService_History(t *testing.T) {
	svc, repo, _ := setupService(t)

	userID := uuid.New()
	entries := []model.LogEntry{
		{ID: uuid.New(), UserID: userID, Action: model.ActionMedication, Timestamp: time.Now()},
		{ID: uuid.New(), UserID: userID, Action: model.ActionWater, Timestamp: time.Now().Add(-time.Hour)},
	}

	repo.EXPECT().ListLogsByUser(gomock.Any(), userID).Return(entries, nil)

	got, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestService_WaterCountToday(t *testing.T) {
	svc, repo, _ := setupService(t)

	userID := uuid.New()

	repo.EXPECT().CountActionSince(gomock.Any(), userID, model.ActionWater, gomock.Any()).Return(5, nil)

	count, err := svc.WaterCountToday(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
