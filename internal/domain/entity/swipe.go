package entity

import (
	"time"

	"github.com/google/uuid"
)

// SwipeRecord captures a single swipe event. Records are written once and
// never mutated or deleted.
type SwipeRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID  // The account that swiped.
	TargetUserID *uuid.UUID // The account swiped on, when the client sends one.
	Action       string     // e.g. "like", "pass".
	Timestamp    time.Time
}
