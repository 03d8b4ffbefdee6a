package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// NewsRepository defines persistence operations for news posts.
type NewsRepository interface {
	Create(ctx context.Context, post *domain.NewsPost) (*domain.NewsPost, error)
	FindByID(ctx context.Context, id string) (*domain.NewsPost, error)
	// FindAll returns all posts ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*domain.NewsPost, error)
	Update(ctx context.Context, post *domain.NewsPost) error
	DeleteByID(ctx context.Context, id string) error
}
