package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wunif/site-api/internal/core/domain"
	"github.com/wunif/site-api/internal/core/ports"
)

// ComplaintService implements the complaint/suggestion mailbox.
type ComplaintService struct {
	repo   ports.ComplaintRepository
	logger zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, logger: logger}
}

func (s *ComplaintService) Submit(ctx context.Context, name, email, kind, message string) (*domain.ComplaintSuggestion, error) {
	if !domain.ValidKind(kind) {
		return nil, domain.ErrInvalidKind
	}

	cs := &domain.ComplaintSuggestion{
		Name:      name,
		Email:     email,
		Kind:      kind,
		Message:   message,
		Response:  "",
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, cs)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *ComplaintService) List(ctx context.Context) ([]*domain.ComplaintSuggestion, error) {
	return s.repo.FindAll(ctx)
}

// Reply records the admin response and resolves the entry. Replying again
// overwrites the response but the status stays resuelto; there is no reverse
// transition.
func (s *ComplaintService) Reply(ctx context.Context, id, response string) (*domain.ComplaintSuggestion, error) {
	cs, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetResponse(ctx, id, response, domain.StatusResolved); err != nil {
		return nil, err
	}

	cs.Response = response
	cs.Status = domain.StatusResolved

	s.logger.Info().Str("id", id).Str("kind", cs.Kind).Msg("complaint resolved")
	return cs, nil
}

func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
