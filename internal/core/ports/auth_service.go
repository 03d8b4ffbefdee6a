package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// AuthService implements public registration and login. Both return a signed
// token so the client can act immediately after registering.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
