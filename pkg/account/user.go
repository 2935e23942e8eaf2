package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash holds the encoded credential
// record exactly as produced by password.Hasher.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
