package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wunif/site-api/internal/core/domain"
	"github.com/wunif/site-api/internal/core/ports"
)

// UserService implements admin user management: listing, role grant/revoke
// and deletion. Only the reserved admin account reaches these operations (the
// router gates them), but the service re-checks the self-protection rules.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// GrantAdmin promotes username to admin. Granting a role the user already
// holds is a no-op success, so repeated admin-panel clicks are harmless.
func (s *UserService) GrantAdmin(ctx context.Context, actorUsername, username string) error {
	return s.setRole(ctx, actorUsername, username, domain.RoleAdmin)
}

// RevokeAdmin demotes username back to a regular user.
func (s *UserService) RevokeAdmin(ctx context.Context, actorUsername, username string) error {
	return s.setRole(ctx, actorUsername, username, domain.RoleUser)
}

func (s *UserService) setRole(ctx context.Context, actorUsername, username, role string) error {
	if username == actorUsername {
		return domain.ErrSelfRoleChange
	}
	if username == domain.ReservedAdminUsername {
		return domain.ErrSelfRoleChange
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.Role == role {
		return nil
	}

	if err := s.repo.UpdateRole(ctx, username, role); err != nil {
		return err
	}

	s.logger.Info().
		Str("username", username).
		Str("role", role).
		Str("actor", actorUsername).
		Msg("user role changed")
	return nil
}

// DeleteUser removes the user with the given id. Deleting an already-absent
// user succeeds; deleting the reserved admin account never does.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil
		}
		return err
	}
	if user.Username == domain.ReservedAdminUsername {
		return domain.ErrReservedAdmin
	}
	return s.repo.DeleteByID(ctx, id)
}

// EnsureReservedAdmin creates the bootstrap admin account if it does not
// exist yet. Called at startup and by the createadmin command.
func (s *UserService) EnsureReservedAdmin(ctx context.Context, password string) error {
	_, err := s.repo.FindByUsername(ctx, domain.ReservedAdminUsername)
	if err == nil {
		return nil
	}
	if err != domain.ErrUserNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, &domain.User{
		Username:     domain.ReservedAdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == domain.ErrUserExists {
		// Lost a race with another instance bootstrapping the same account.
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info().Str("username", domain.ReservedAdminUsername).Msg("reserved admin account created")
	return nil
}
