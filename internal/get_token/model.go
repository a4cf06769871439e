package get_token

import (
	"time"

	"github.com/google/uuid"
)

type PayloadDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	ExpiredAt time.Time `json:"expired_at"`
	// Token carries the raw bearer credential so callers into peer
	// services pass it explicitly instead of reading ambient state.
	Token string `json:"-"`
}
