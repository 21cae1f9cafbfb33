package repository

import (
	"context"

	"swipedeck/internal/domain/entity"
)

// SwipeRepository persists swipe events. Records are append-only.
type SwipeRepository interface {
	Create(ctx context.Context, record *entity.SwipeRecord) error
}
