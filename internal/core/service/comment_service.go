package service

import (
	"context"
	"time"

	"github.com/wunif/site-api/internal/core/domain"
	"github.com/wunif/site-api/internal/core/ports"
)

// CommentService implements comments on news posts.
type CommentService struct {
	repo ports.CommentRepository
}

func NewCommentService(repo ports.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.FindByPostID(ctx, postID)
}

// Create stores a comment. Author is the verified caller's username.
func (s *CommentService) Create(ctx context.Context, postID, content, author string) (*domain.Comment, error) {
	comment := &domain.Comment{
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Delete removes a comment when the caller authored it or holds an admin
// role; everyone else gets ErrForbidden.
func (s *CommentService) Delete(ctx context.Context, id, actorUsername, actorRole string) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDeleteComment(comment, actorUsername, actorRole) {
		return domain.ErrForbidden
	}
	return s.repo.DeleteByID(ctx, id)
}
