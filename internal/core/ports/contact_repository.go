package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	// FindAll returns all messages ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*domain.ContactMessage, error)
	DeleteByID(ctx context.Context, id string) error
}
