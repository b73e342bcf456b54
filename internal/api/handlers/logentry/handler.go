package logentry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/medication-reminder/internal/api/dto"
	"github.com/aliskhannn/medication-reminder/internal/api/respond"
	"github.com/aliskhannn/medication-reminder/internal/model"
	"github.com/aliskhannn/medication-reminder/internal/repository/adherence"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/logentry/mock.go -package=mocks

type adherenceService interface {
	LogAction(ctx context.Context, userID uuid.UUID, action string) (uuid.UUID, error)
	History(ctx context.Context, userID uuid.UUID) ([]model.LogEntry, error)
}

type Handler struct {
	service   adherenceService
	validator *validator.Validate
}

func NewHandler(s adherenceService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create appends an action to the user's log. Logging a medication action
// is what cancels any reminder countdown in flight for the user.
func (h *Handler) Create(c *ginext.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req dto.LogRequest

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

	entryID, err := h.service.LogAction(c.Request.Context(), id, req.Action)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", id.String()).Str("action", req.Action).Msg("failed to log action")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, entryID)
}

// List returns the user's full action history, newest first.
func (h *Handler) List(c *ginext.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	entries, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, adherence.ErrNoLogsFound) {
			respond.Fail(c.Writer, http.StatusNotFound, adherence.ErrNoLogsFound)
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to get history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, entries)
}

func (h *Handler) userID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
