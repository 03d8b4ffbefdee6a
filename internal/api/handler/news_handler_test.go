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
	"github.com/wunif/site-api/internal/core/ports"
)

type stubNewsService struct {
	byID   map[string]*domain.NewsPost
	nextID int
}

func newStubNewsService() *stubNewsService {
	return &stubNewsService{byID: make(map[string]*domain.NewsPost)}
}

func (s *stubNewsService) List(_ context.Context) ([]*domain.NewsPost, error) {
	posts := make([]*domain.NewsPost, 0, len(s.byID))
	for _, p := range s.byID {
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *stubNewsService) Get(_ context.Context, id string) (*domain.NewsPost, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNewsNotFound
	}
	return p, nil
}

func (s *stubNewsService) Create(_ context.Context, input ports.CreateNewsInput) (*domain.NewsPost, error) {
	s.nextID++
	p := &domain.NewsPost{
		ID:         fmt.Sprintf("post-%d", s.nextID),
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		FontFamily: input.FontFamily,
		ImageURL:   input.ImageURL,
		CreatedAt:  time.Now().UTC(),
	}
	s.byID[p.ID] = p
	return p, nil
}

func (s *stubNewsService) Update(_ context.Context, id string, input ports.UpdateNewsInput) (*domain.NewsPost, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNewsNotFound
	}
	if input.Title != "" {
		p.Title = input.Title
	}
	if input.Content != "" {
		p.Content = input.Content
	}
	return p, nil
}

func (s *stubNewsService) Delete(_ context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNewsNotFound
	}
	delete(s.byID, id)
	return nil
}

func newNewsEcho() (*echo.Echo, *stubNewsService) {
	e := newTestEcho()
	svc := newStubNewsService()
	h := handler.NewNewsHandler(svc)
	e.GET("/api/news", h.List)
	e.GET("/api/news/:id", h.Get)
	admin := e.Group("/api/admin", asUser("admin", domain.RoleAdmin))
	admin.POST("/news", h.Create)
	admin.PUT("/news/:id", h.Update)
	admin.DELETE("/news/:id", h.Delete)
	return e, svc
}

func TestNewsHandler_CreateStampsAuthorFromIdentity(t *testing.T) {
	e, svc := newNewsEcho()

	// Body carries no author field; it comes from the verified identity.
	rec := doJSON(e, http.MethodPost, "/api/admin/news",
		`{"title":"T","content":"<p>c</p>","fontFamily":"Inter","imageUrl":"https://x/a.png"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["author"] != "admin" {
		t.Fatalf("expected author admin, got %v", body["author"])
	}
	if len(svc.byID) != 1 {
		t.Fatalf("expected one stored post, got %d", len(svc.byID))
	}
}

func TestNewsHandler_CreateValidation(t *testing.T) {
	e, svc := newNewsEcho()

	rec := doJSON(e, http.MethodPost, "/api/admin/news", `{"title":"T"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.byID) != 0 {
		t.Fatal("invalid payload must not create a post")
	}
}

func TestNewsHandler_GetNotFound(t *testing.T) {
	e, _ := newNewsEcho()

	rec := doJSON(e, http.MethodGet, "/api/news/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewsHandler_UpdateAndDelete(t *testing.T) {
	e, svc := newNewsEcho()
	post, _ := svc.Create(context.Background(), ports.CreateNewsInput{
		Title: "T", Content: "c", FontFamily: "f", ImageURL: "i", Author: "admin",
	})

	rec := doJSON(e, http.MethodPut, "/api/admin/news/"+post.ID, `{"title":"T2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["title"] != "T2" {
		t.Fatalf("expected updated title, got %v", body["title"])
	}

	rec = doJSON(e, http.MethodDelete, "/api/admin/news/"+post.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.byID) != 0 {
		t.Fatal("post should be gone")
	}

	rec = doJSON(e, http.MethodDelete, "/api/admin/news/"+post.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}
