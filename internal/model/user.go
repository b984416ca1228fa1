package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owner. All other rows hang off a user via UserID.
// IsAdmin gates the admin console; there is no implicit first-user admin.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
