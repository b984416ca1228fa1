package model

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is an unlocked milestone. Append-only — never updated or deleted.
// The (user_id, title) unique index closes the check-then-insert race; callers
// still pre-check so duplicates surface as a clean 400 rather than a DB error.
type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement"`
	Title       string    `gorm:"not null;uniqueIndex:idx_user_achievement"`
	Description string    `gorm:"not null"`
	UnlockedAt  time.Time `gorm:"autoCreateTime"`
}
