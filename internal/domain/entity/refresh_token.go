package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the persisted half of a session: the hash of the opaque
// refresh credential handed to a client on login. The plaintext token is
// never stored.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profileId"`
	TokenHash string    `json:"-"` // Never serialized.
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
