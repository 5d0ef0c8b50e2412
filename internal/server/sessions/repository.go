package sessions

import (
	"context"
)

// Repository persists sessions. Only creation is exposed: sessions are never
// updated or deleted through the booking API.
type Repository interface {
	Create(ctx context.Context, session *Session) (*Session, error)
}
