package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// NewsCache caches the public news list. Implementations are best-effort:
// callers treat any error as a cache miss and fall back to the repository.
type NewsCache interface {
	GetList(ctx context.Context) ([]*domain.NewsPost, error)
	SetList(ctx context.Context, posts []*domain.NewsPost) error
	Invalidate(ctx context.Context) error
}
