package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// ComplaintRepository defines persistence operations for complaints and suggestions.
type ComplaintRepository interface {
	Create(ctx context.Context, cs *domain.ComplaintSuggestion) (*domain.ComplaintSuggestion, error)
	FindByID(ctx context.Context, id string) (*domain.ComplaintSuggestion, error)
	// FindAll returns all entries ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*domain.ComplaintSuggestion, error)
	// SetResponse records the admin reply and the new status on an entry.
	SetResponse(ctx context.Context, id, response, status string) error
	DeleteByID(ctx context.Context, id string) error
}
