package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	mocks "github.com/aliskhannn/medication-reminder/internal/mocks/service/user"
	"github.com/aliskhannn/medication-reminder/internal/model"
	userrepo "github.com/aliskhannn/medication-reminder/internal/repository/user"
)

func setupService(t *testing.T) (*Service, *mocks.MockuserRepository, *mocks.Mocknotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockuserRepository(ctrl)
	notify := mocks.NewMocknotifier(ctrl)

	return NewService(repo, notify), repo, notify
}

func TestService_Register(t *testing.T) {
	svc, repo, notify := setupService(t)

	user := model.User{
		Name:    "Alisha",
		Email:   "alisha@example.com",
		MedName: "Ibuprofen",
		Dosage:  "200mg",
		MedTime: "08:00",
	}
	id := uuid.New()

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(model.User{}, userrepo.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u model.User) (uuid.UUID, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
			return id, nil
		})
	notify.EXPECT().Notify(gomock.Any(), "Welcome to Medication Reminder!", gomock.Any()).Return(nil)

	got, err := svc.Register(context.Background(), user, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestService_Register_EmailTaken(t *testing.T) {
	svc, repo, _ := setupService(t)

	user := model.User{Email: "taken@example.com", MedTime: "08:00"}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(model.User{Email: user.Email}, nil)

	_, err := svc.Register(context.Background(), user, "s3cret")
	assert.ErrorIs(t, err, userrepo.ErrEmailTaken)
}

func TestService_Register_InvalidMedTime(t *testing.T) {
	svc, _, _ := setupService(t)

	user := model.User{Email: "alisha@example.com", MedTime: "8 o'clock"}

	_, err := svc.Register(context.Background(), user, "s3cret")
	assert.Error(t, err)
}

func TestService_Register_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	svc, repo, notify := setupService(t)

	user := model.User{Name: "Alisha", Email: "alisha@example.com", MedTime: "08:00"}
	id := uuid.New()

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(model.User{}, userrepo.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(id, nil)
	notify.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	got, err := svc.Register(context.Background(), user, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestService_Get(t *testing.T) {
	svc, repo, _ := setupService(t)

	id := uuid.New()
	user := model.User{ID: id, Name: "Alisha"}

	repo.EXPECT().GetUserByID(gomock.Any(), id).Return(user, nil)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestService_UpdateProfile(t *testing.T) {
	svc, repo, _ := setupService(t)

	user := model.User{ID: uuid.New(), Name: "Alisha", MedTime: "21:30"}

	repo.EXPECT().UpdateUser(gomock.Any(), user).Return(nil)

	require.NoError(t, svc.UpdateProfile(context.Background(), user))
}

func TestService_UpdateProfile_InvalidMedTime(t *testing.T) {
	svc, _, _ := setupService(t)

	user := model.User{ID: uuid.New(), MedTime: "25:00"}

	assert.Error(t, svc.UpdateProfile(context.Background(), user))
}
