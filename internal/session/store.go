package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a token has no live session (never issued,
// expired, or destroyed by logout / account deletion).
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to user ids. Sessions are server-held
// state: destroying one immediately invalidates the token everywhere.
type Store interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error

	Close() error
}
