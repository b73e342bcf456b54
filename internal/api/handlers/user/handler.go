package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/api/dto"
	"github.com/aliskhannn/medication-reminder/internal/api/respond"
	"github.com/aliskhannn/medication-reminder/internal/model"
	userrepo "github.com/aliskhannn/medication-reminder/internal/repository/user"
	"github.com/aliskhannn/medication-reminder/internal/schedule"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/user/mock.go -package=mocks

type userService interface {
	Register(ctx context.Context, user model.User, password string) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, user model.User) error
}

type adherenceService interface {
	HasTakenToday(ctx context.Context, userID uuid.UUID) (bool, error)
	WaterCountToday(ctx context.Context, userID uuid.UUID) (int, error)
}

type reminderService interface {
	RemindNow(user model.User) error
}

type Handler struct {
	service   userService
	adherence adherenceService
	reminder  reminderService
	validator *validator.Validate
}

func NewHandler(
	s userService,
	a adherenceService,
	r reminderService,
	v *validator.Validate,
) *Handler {
	return &Handler{service: s, adherence: a, reminder: r, validator: v}
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	user := model.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		MedName:   req.MedName,
		Dosage:    req.Dosage,
		MedTime:   req.MedTime,
		WaterGoal: req.WaterGoal,
	}

	id, err := h.service.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, userrepo.ErrEmailTaken) {
			zlog.Logger.Warn().Str("email", req.Email).Msg("email already registered")
			respond.Fail(c.Writer, http.StatusConflict, userrepo.ErrEmailTaken)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to register user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, userrepo.ErrUserNotFound)
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, user)
}

func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	user := model.User{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		MedName:   req.MedName,
		Dosage:    req.Dosage,
		MedTime:   req.MedTime,
		WaterGoal: req.WaterGoal,
	}

	if err := h.service.UpdateProfile(c.Request.Context(), user); err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, userrepo.ErrUserNotFound)
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to update user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "profile updated")
}

// Summary returns the dashboard view: when the next dose is due, whether
// medication was already taken today, and water progress against the goal.
func (h *Handler) Summary(c *ginext.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	user, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, userrepo.ErrUserNotFound)
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	tod, err := schedule.ParseTimeOfDay(user.MedTime)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("user has invalid medication time")
		respond.Fail(c.Writer, http.StatusUnprocessableEntity, fmt.Errorf("invalid medication time"))
		return
	}

	now := time.Now()
	next := schedule.NextOccurrence(tod, now)
	diff := next.Sub(now)
	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)

	taken, err := h.adherence.HasTakenToday(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to check adherence")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	water, err := h.adherence.WaterCountToday(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to count water actions")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.SummaryResponse{
		NextDoseAt:  next.Format(time.RFC3339),
		NextDoseIn:  fmt.Sprintf("in %d hour(s) and %d minute(s)", hours, minutes),
		TakenToday:  taken,
		WaterLogged: water,
		WaterGoal:   user.WaterGoal,
	})
}

// Remind sends a manual, immediate reminder to the user.
func (h *Handler) Remind(c *ginext.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, userrepo.ErrUserNotFound)
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := h.reminder.RemindNow(user); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to send manual reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "reminder sent")
}

func (h *Handler) userID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
