package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"swipedeck/internal/delivery/http/middleware"
	"swipedeck/internal/delivery/http/response"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/usecase"
)

// swipeRequest is the wire form of one swipe event. The body's userId only
// counts when the route runs unprotected; an authenticated identity wins.
type swipeRequest struct {
	UserID       *uuid.UUID `json:"userId"`
	TargetUserID *uuid.UUID `json:"targetUserId"`
	Action       string     `json:"action" validate:"required"`
}

// swipeResponse mirrors the stored record in the field names the clients read.
type swipeResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	TargetUserID *uuid.UUID `json:"targetUserId,omitempty"`
	Action       string     `json:"action"`
	Timestamp    string     `json:"timestamp"`
}

// SwipeHandler records swipe events.
type SwipeHandler struct {
	uc     usecase.SwipeUsecase
	logger *slog.Logger
}

// NewSwipeHandler is the constructor for SwipeHandler, injected by Fx.
func NewSwipeHandler(uc usecase.SwipeUsecase, logger *slog.Logger) *SwipeHandler {
	return &SwipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordSwipe handles the swipe recording request.
func (h *SwipeHandler) RecordSwipe(c echo.Context) error {
	var req swipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid swipe input")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrSwipeValidationFailed.WrapMessage("swipe action is missing")
	}

	input := &usecase.RecordSwipeInput{
		TargetUserID: req.TargetUserID,
		Action:       req.Action,
	}

	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		input.UserID = userID
	} else if req.UserID != nil {
		input.UserID = *req.UserID
	}

	record, err := h.uc.RecordSwipe(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, swipeResponse{
		ID:           record.ID,
		UserID:       record.UserID,
		TargetUserID: record.TargetUserID,
		Action:       record.Action,
		Timestamp:    record.Timestamp.Format(time.RFC3339),
	}, "Swipe recorded")
}
