package domain

import (
	"context"

	"github.com/google/uuid"
)

// ApplicationRepository persists intake records.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *Application) (uuid.UUID, error)
	ListAll(ctx context.Context) ([]Application, error)
}

// AdminRepository reads and seeds administrator credentials.
type AdminRepository interface {
	// FindByCredentials looks up an admin whose username and password both
	// exactly match. Returns ErrInvalidCredentials when no row matches.
	FindByCredentials(ctx context.Context, username, password string) (*Admin, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, username, password string) (*Admin, error)
}

// SessionStore holds the per-browser admin flag, keyed by the cookie's
// session ID. Entries expire on their own after the configured TTL.
type SessionStore interface {
	Activate(ctx context.Context, sessionID uuid.UUID) error
	IsActive(ctx context.Context, sessionID uuid.UUID) (bool, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
