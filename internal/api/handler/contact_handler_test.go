package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/api/handler"
	"github.com/wunif/site-api/internal/core/domain"
)

type stubContactService struct {
	byID   map[string]*domain.ContactMessage
	nextID int
}

func newStubContactService() *stubContactService {
	return &stubContactService{byID: make(map[string]*domain.ContactMessage)}
}

func (s *stubContactService) Submit(_ context.Context, name, email, message string) (*domain.ContactMessage, error) {
	s.nextID++
	msg := &domain.ContactMessage{
		ID:        fmt.Sprintf("msg-%d", s.nextID),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	s.byID[msg.ID] = msg
	return msg, nil
}

func (s *stubContactService) List(_ context.Context) ([]*domain.ContactMessage, error) {
	msgs := make([]*domain.ContactMessage, 0, len(s.byID))
	for _, m := range s.byID {
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *stubContactService) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(s.byID, id)
	return nil
}

func newContactEcho() (*echo.Echo, *stubContactService) {
	e := newTestEcho()
	svc := newStubContactService()
	h := handler.NewContactHandler(svc)
	e.POST("/api/contactmessages", h.Submit)
	admin := e.Group("/api/admin", asUser("admin", domain.RoleAdmin))
	admin.GET("/contactmessages", h.List)
	admin.DELETE("/contactmessages/:id", h.Delete)
	return e, svc
}

func TestContactHandler_AnonymousSubmit(t *testing.T) {
	e, svc := newContactEcho()

	// No token, no identity: the contact form is public.
	rec := doJSON(e, http.MethodPost, "/api/contactmessages",
		`{"name":"Ana","email":"ana@x.com","message":"hola"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.byID) != 1 {
		t.Fatalf("expected one stored message, got %d", len(svc.byID))
	}
}

func TestContactHandler_SubmitValidation(t *testing.T) {
	e, svc := newContactEcho()

	for _, payload := range []string{
		`{"name":"Ana","email":"not-an-email","message":"hola"}`,
		`{"name":"Ana","email":"ana@x.com"}`,
		`{"email":"ana@x.com","message":"hola"}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/contactmessages", payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, rec.Code)
		}
	}
	if len(svc.byID) != 0 {
		t.Fatal("invalid payloads must not be stored")
	}
}

func TestContactHandler_AdminListAndDelete(t *testing.T) {
	e, svc := newContactEcho()
	msg, _ := svc.Submit(context.Background(), "Ana", "ana@x.com", "hola")

	rec := doJSON(e, http.MethodGet, "/api/admin/contactmessages", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodDelete, "/api/admin/contactmessages/"+msg.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.byID) != 0 {
		t.Fatal("message should be gone")
	}

	rec = doJSON(e, http.MethodDelete, "/api/admin/contactmessages/"+msg.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}
