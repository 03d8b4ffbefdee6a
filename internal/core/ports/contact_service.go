package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// ContactService implements contact-message intake and admin review.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
