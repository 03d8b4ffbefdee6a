package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAll returns every user. Password hashes stay in the domain type but
	// are never serialized (json:"-").
	FindAll(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, username, role string) error
	DeleteByID(ctx context.Context, id string) error
}
