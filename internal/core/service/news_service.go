package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wunif/site-api/internal/core/domain"
	"github.com/wunif/site-api/internal/core/ports"
)

// NewsService implements news publishing. The public list is served through
// an optional cache; every mutation invalidates it. Cache failures are logged
// and degrade to repository reads.
type NewsService struct {
	repo   ports.NewsRepository
	cache  ports.NewsCache // nil disables caching
	logger zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, cache ports.NewsCache, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, cache: cache, logger: logger}
}

func (s *NewsService) List(ctx context.Context) ([]*domain.NewsPost, error) {
	if s.cache != nil {
		posts, err := s.cache.GetList(ctx)
		if err == nil && posts != nil {
			return posts, nil
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("news cache read failed")
		}
	}

	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, posts); err != nil {
			s.logger.Warn().Err(err).Msg("news cache write failed")
		}
	}
	return posts, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*domain.NewsPost, error) {
	return s.repo.FindByID(ctx, id)
}

// Create publishes a new post. Author comes from the acting admin's verified
// identity, never from the request body.
func (s *NewsService) Create(ctx context.Context, input ports.CreateNewsInput) (*domain.NewsPost, error) {
	post := &domain.NewsPost{
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		FontFamily: input.FontFamily,
		ImageURL:   input.ImageURL,
		CreatedAt:  time.Now().UTC(),
	}
	if post.ImageURL == "" {
		post.ImageURL = domain.DefaultNewsImageURL
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

// Update applies a partial update: empty input fields keep stored values.
func (s *NewsService) Update(ctx context.Context, id string, input ports.UpdateNewsInput) (*domain.NewsPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.FontFamily != "" {
		post.FontFamily = input.FontFamily
	}
	if input.ImageURL != "" {
		post.ImageURL = input.ImageURL
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return post, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *NewsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("news cache invalidation failed")
	}
}
