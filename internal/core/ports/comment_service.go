package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// CommentService implements post comments.
type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	// Create stores a comment authored by the verified caller.
	Create(ctx context.Context, postID, content, author string) (*domain.Comment, error)
	// Delete removes a comment if the caller is its author or an admin.
	Delete(ctx context.Context, id, actorUsername, actorRole string) error
}
