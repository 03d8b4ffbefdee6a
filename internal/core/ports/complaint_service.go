package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// ComplaintService implements the complaint/suggestion mailbox.
type ComplaintService interface {
	Submit(ctx context.Context, name, email, kind, message string) (*domain.ComplaintSuggestion, error)
	List(ctx context.Context) ([]*domain.ComplaintSuggestion, error)
	// Reply records the admin response and resolves the entry. This is the
	// only pendiente → resuelto transition in the system.
	Reply(ctx context.Context, id, response string) (*domain.ComplaintSuggestion, error)
	Delete(ctx context.Context, id string) error
}
