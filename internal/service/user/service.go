package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aliskhannn/medication-reminder/internal/model"
	userrepo "github.com/aliskhannn/medication-reminder/internal/repository/user"
	"github.com/aliskhannn/medication-reminder/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/user/mock.go -package=mocks

type userRepository interface {
	CreateUser(ctx context.Context, user model.User) (uuid.UUID, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
}

type notifier interface {
	Notify(user model.User, subject, body string) error
}

// Service owns user registration and profile management. Authentication
// itself lives outside this service; only the password hash is stored.
type Service struct {
	repo     userRepository
	notifier notifier
}

// NewService creates a user service.
func NewService(repo userRepository, notifier notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Register validates and stores a new user, then sends a best-effort
// welcome email.
func (s *Service) Register(ctx context.Context, user model.User, password string) (uuid.UUID, error) {
	if _, err := schedule.ParseTimeOfDay(user.MedTime); err != nil {
		return uuid.Nil, fmt.Errorf("invalid medication time: %w", err)
	}

	_, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return uuid.Nil, userrepo.ErrEmailTaken
	}
	if !errors.Is(err, userrepo.ErrUserNotFound) {
		return uuid.Nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create user: %w", err)
	}

	user.ID = id
	subject := "Welcome to Medication Reminder!"
	body := fmt.Sprintf("Hi %s, welcome! Your medication time is %s.", user.Name, user.MedTime)
	if err := s.notifier.Notify(user, subject, body); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to send welcome email")
	}

	return id, nil
}

// Get retrieves a user by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

// UpdateProfile updates a user's editable fields.
func (s *Service) UpdateProfile(ctx context.Context, user model.User) error {
	if _, err := schedule.ParseTimeOfDay(user.MedTime); err != nil {
		return fmt.Errorf("invalid medication time: %w", err)
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}
