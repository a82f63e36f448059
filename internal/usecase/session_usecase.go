package usecase

import (
	"context"

	"footprint/internal/domain/entity"
)

// SessionUsecase manages the user session held in the local cache.
type SessionUsecase interface {
	// Login exchanges a platform login code for a session and stores it.
	Login(ctx context.Context, code string) (*entity.UserInfo, error)

	// Logout drops the stored session.
	Logout(ctx context.Context) error

	// Profile returns the stored session, or nil when logged out.
	Profile(ctx context.Context) (*entity.UserInfo, error)

	// ClearCache erases every locally cached slot, the session included.
	// The caller is responsible for confirming with the user first.
	ClearCache(ctx context.Context) error
}
