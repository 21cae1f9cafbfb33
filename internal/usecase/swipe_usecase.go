package usecase

import (
	"context"

	"github.com/google/uuid"

	"swipedeck/internal/domain/entity"
)

// RecordSwipeInput defines one swipe event. UserID comes from the
// authenticated identity, not the request body, when the route is protected.
type RecordSwipeInput struct {
	UserID       uuid.UUID
	TargetUserID *uuid.UUID
	Action       string
}

// SwipeUsecase records swipe events.
type SwipeUsecase interface {
	RecordSwipe(ctx context.Context, input *RecordSwipeInput) (*entity.SwipeRecord, error)
}
