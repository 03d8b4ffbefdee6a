package ports

import (
	"context"

	"github.com/wunif/site-api/internal/core/domain"
)

// CreateNewsInput carries the data for a new post. Author is the acting
// admin's verified username, never client input.
type CreateNewsInput struct {
	Title      string
	Content    string
	FontFamily string
	ImageURL   string
	Author     string
}

// UpdateNewsInput carries a partial update; empty fields keep stored values.
type UpdateNewsInput struct {
	Title      string
	Content    string
	FontFamily string
	ImageURL   string
}

// NewsService implements the news publishing use cases.
type NewsService interface {
	List(ctx context.Context) ([]*domain.NewsPost, error)
	Get(ctx context.Context, id string) (*domain.NewsPost, error)
	Create(ctx context.Context, input CreateNewsInput) (*domain.NewsPost, error)
	Update(ctx context.Context, id string, input UpdateNewsInput) (*domain.NewsPost, error)
	Delete(ctx context.Context, id string) error
}
