package postgres

import (
	"context"

	"gorm.io/gorm"

	"swipedeck/internal/domain/entity"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/repository"
	"swipedeck/internal/infra/persistence/model"
)

// swipeRepository implements repository.SwipeRepository using GORM.
type swipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository is the constructor for swipeRepository.
func NewSwipeRepository(db *gorm.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

// Create appends one swipe event.
func (repo *swipeRepository) Create(ctx context.Context, record *entity.SwipeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, storeCallTimeout)
	defer cancel()

	swipeM := &model.SwipeModel{
		ID:           record.ID,
		UserID:       record.UserID,
		TargetUserID: record.TargetUserID,
		Action:       record.Action,
		Timestamp:    record.Timestamp,
	}

	if err := repo.db.WithContext(ctx).Create(swipeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create swipe record")
	}

	return nil
}
