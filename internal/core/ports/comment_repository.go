package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// FindByPostID returns a post's comments ordered by creation time, oldest first.
	FindByPostID(ctx context.Context, postID string) ([]*domain.Comment, error)
	DeleteByID(ctx context.Context, id string) error
}
