package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// UserService implements the admin-facing user management operations.
// Grant/revoke/delete are idempotent: an already-satisfied request succeeds
// without touching the store.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// GrantAdmin promotes the named user to admin. actorUsername is the
	// verified identity of the caller; acting on oneself is rejected.
	GrantAdmin(ctx context.Context, actorUsername, username string) error
	// RevokeAdmin demotes the named user back to a regular user.
	RevokeAdmin(ctx context.Context, actorUsername, username string) error
	// DeleteUser removes the user with the given id. The reserved admin
	// account can never be deleted.
	DeleteUser(ctx context.Context, id string) error
	// EnsureReservedAdmin creates the bootstrap admin account if absent.
	EnsureReservedAdmin(ctx context.Context, password string) error
}
