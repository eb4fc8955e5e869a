package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a member of the allow-list. Only admins may mutate photos or read
// trashed ones; everything else is public.
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
