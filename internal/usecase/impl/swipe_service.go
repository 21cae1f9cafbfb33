package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "swipedeck/internal/delivery/context"
	"swipedeck/internal/domain/entity"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/repository"
	"swipedeck/internal/errors"
	"swipedeck/internal/usecase"
)

// swipeService implements the SwipeUsecase interface.
type swipeService struct {
	swipeRepo repository.SwipeRepository
	logger    *slog.Logger
}

// SwipeServiceParams holds dependencies for swipeService, injected by Fx.
type SwipeServiceParams struct {
	fx.In

	SwipeRepo repository.SwipeRepository
	Logger    *slog.Logger
}

// NewSwipeService is the constructor for swipeService.
func NewSwipeService(params SwipeServiceParams) usecase.SwipeUsecase {
	return &swipeService{
		swipeRepo: params.SwipeRepo,
		logger:    params.Logger,
	}
}

func (srv *swipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordSwipe persists one swipe event and returns the stored record.
func (srv *swipeService) RecordSwipe(ctx context.Context, input *usecase.RecordSwipeInput) (*entity.SwipeRecord, error) {
	if input == nil || input.UserID == uuid.Nil || strings.TrimSpace(input.Action) == "" {
		return nil, domainerrors.ErrSwipeValidationFailed.WrapMessage("swipe requires a user and an action")
	}

	record := &entity.SwipeRecord{
		ID:           uuid.New(),
		UserID:       input.UserID,
		TargetUserID: input.TargetUserID,
		Action:       input.Action,
		Timestamp:    time.Now().UTC(),
	}

	if err := srv.swipeRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to record swipe", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record swipe")
	}

	srv.log(ctx).Debug("Swipe recorded", slog.Any("swipeID", record.ID), slog.String("action", record.Action))

	return record, nil
}
