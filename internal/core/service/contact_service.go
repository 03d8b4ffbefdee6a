package service

import (
	"context"
	"time"

	"github.com/wunif/site-api/internal/core/domain"
	"github.com/wunif/site-api/internal/core/ports"
)

// ContactService implements the public contact form and its admin review.
type ContactService struct {
	repo ports.ContactRepository
}

func NewContactService(repo ports.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.FindAll(ctx)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
