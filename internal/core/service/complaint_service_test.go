package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wunif/site-api/internal/core/domain"
)

type stubComplaintRepo struct {
	byID   map[string]*domain.ComplaintSuggestion
	nextID int
}

func newStubComplaintRepo() *stubComplaintRepo {
	return &stubComplaintRepo{byID: make(map[string]*domain.ComplaintSuggestion)}
}

func (r *stubComplaintRepo) Create(_ context.Context, cs *domain.ComplaintSuggestion) (*domain.ComplaintSuggestion, error) {
	r.nextID++
	clone := *cs
	clone.ID = fmt.Sprintf("cs-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubComplaintRepo) FindByID(_ context.Context, id string) (*domain.ComplaintSuggestion, error) {
	cs, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrComplaintNotFound
	}
	clone := *cs
	return &clone, nil
}

func (r *stubComplaintRepo) FindAll(_ context.Context) ([]*domain.ComplaintSuggestion, error) {
	items := make([]*domain.ComplaintSuggestion, 0, len(r.byID))
	for _, cs := range r.byID {
		clone := *cs
		items = append(items, &clone)
	}
	return items, nil
}

func (r *stubComplaintRepo) SetResponse(_ context.Context, id, response, status string) error {
	cs, ok := r.byID[id]
	if !ok {
		return domain.ErrComplaintNotFound
	}
	cs.Response = response
	cs.Status = status
	return nil
}

func (r *stubComplaintRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrComplaintNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestComplaintService_SubmitStartsPending(t *testing.T) {
	svc := NewComplaintService(newStubComplaintRepo(), zerolog.Nop())

	cs, err := svc.Submit(context.Background(), "A", "a@x.com", domain.KindComplaint, "m")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if cs.Status != domain.StatusPending {
		t.Fatalf("expected pendiente, got %q", cs.Status)
	}
	if cs.Response != "" {
		t.Fatalf("expected empty response, got %q", cs.Response)
	}
}

func TestComplaintService_SubmitRejectsUnknownKind(t *testing.T) {
	repo := newStubComplaintRepo()
	svc := NewComplaintService(repo, zerolog.Nop())

	for _, kind := range []string{"", "otro", "QUEJA"} {
		if _, err := svc.Submit(context.Background(), "A", "a@x.com", kind, "m"); err != domain.ErrInvalidKind {
			t.Fatalf("kind %q: expected ErrInvalidKind, got %v", kind, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatal("rejected submissions must not be stored")
	}
}

func TestComplaintService_ReplyResolves(t *testing.T) {
	repo := newStubComplaintRepo()
	svc := NewComplaintService(repo, zerolog.Nop())

	cs, err := svc.Submit(context.Background(), "A", "a@x.com", domain.KindComplaint, "m")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	replied, err := svc.Reply(context.Background(), cs.ID, "ok")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if replied.Status != domain.StatusResolved {
		t.Fatalf("expected resuelto, got %q", replied.Status)
	}
	if replied.Response != "ok" {
		t.Fatalf("expected response ok, got %q", replied.Response)
	}

	stored := repo.byID[cs.ID]
	if stored.Status != domain.StatusResolved || stored.Response != "ok" {
		t.Fatalf("persisted entry not updated: %+v", stored)
	}
}

func TestComplaintService_ReplyNotFound(t *testing.T) {
	svc := NewComplaintService(newStubComplaintRepo(), zerolog.Nop())

	if _, err := svc.Reply(context.Background(), "missing", "ok"); err != domain.ErrComplaintNotFound {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestComplaintService_DeleteFromEitherStatus(t *testing.T) {
	repo := newStubComplaintRepo()
	svc := NewComplaintService(repo, zerolog.Nop())

	pending, _ := svc.Submit(context.Background(), "A", "a@x.com", domain.KindSuggestion, "m1")
	resolved, _ := svc.Submit(context.Background(), "B", "b@x.com", domain.KindComplaint, "m2")
	if _, err := svc.Reply(context.Background(), resolved.ID, "done"); err != nil {
		t.Fatalf("reply: %v", err)
	}

	if err := svc.Delete(context.Background(), pending.ID); err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	if err := svc.Delete(context.Background(), resolved.ID); err != nil {
		t.Fatalf("delete resolved: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty store, got %d entries", len(repo.byID))
	}
}
