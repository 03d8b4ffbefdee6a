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

type stubCommentService struct {
	byID   map[string]*domain.Comment
	nextID int
}

func newStubCommentService() *stubCommentService {
	return &stubCommentService{byID: make(map[string]*domain.Comment)}
}

func (s *stubCommentService) ListByPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0)
	for _, c := range s.byID {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (s *stubCommentService) Create(_ context.Context, postID, content, author string) (*domain.Comment, error) {
	s.nextID++
	c := &domain.Comment{
		ID:        fmt.Sprintf("comment-%d", s.nextID),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.byID[c.ID] = c
	return c, nil
}

func (s *stubCommentService) Delete(_ context.Context, id, username, role string) error {
	c, ok := s.byID[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	if !domain.CanDeleteComment(c, username, role) {
		return domain.ErrForbidden
	}
	delete(s.byID, id)
	return nil
}

func newCommentEcho(identity echo.MiddlewareFunc) (*echo.Echo, *stubCommentService) {
	e := newTestEcho()
	svc := newStubCommentService()
	h := handler.NewCommentHandler(svc)
	e.GET("/api/comments/:postId", h.ListByPost)
	if identity != nil {
		e.POST("/api/comments", h.Create, identity)
		e.DELETE("/api/comments/:id", h.Delete, identity)
	} else {
		e.POST("/api/comments", h.Create)
		e.DELETE("/api/comments/:id", h.Delete)
	}
	return e, svc
}

func TestCommentHandler_CreateStampsAuthor(t *testing.T) {
	e, svc := newCommentEcho(asUser("alice", domain.RoleUser))

	rec := doJSON(e, http.MethodPost, "/api/comments", `{"postId":"post-1","content":"nice"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["author"] != "alice" {
		t.Fatalf("expected author alice, got %v", body["author"])
	}
	if len(svc.byID) != 1 {
		t.Fatalf("expected one stored comment, got %d", len(svc.byID))
	}
}

func TestCommentHandler_CreateWithoutIdentity(t *testing.T) {
	e, svc := newCommentEcho(nil)

	rec := doJSON(e, http.MethodPost, "/api/comments", `{"postId":"post-1","content":"nice"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.byID) != 0 {
		t.Fatal("unauthenticated request must not create a comment")
	}
}

func TestCommentHandler_DeleteForbiddenForOtherUser(t *testing.T) {
	e, svc := newCommentEcho(asUser("mallory", domain.RoleUser))
	c, _ := svc.Create(context.Background(), "post-1", "text", "alice")

	rec := doJSON(e, http.MethodDelete, "/api/comments/"+c.ID, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := svc.byID[c.ID]; !ok {
		t.Fatal("comment must persist after forbidden delete")
	}
}

func TestCommentHandler_DeleteByAdmin(t *testing.T) {
	e, svc := newCommentEcho(asUser("bob", domain.RoleAdmin))
	c, _ := svc.Create(context.Background(), "post-1", "text", "alice")

	rec := doJSON(e, http.MethodDelete, "/api/comments/"+c.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.byID) != 0 {
		t.Fatal("comment should be gone")
	}
}

func TestCommentHandler_ListIsPublic(t *testing.T) {
	e, svc := newCommentEcho(nil)
	svc.Create(context.Background(), "post-1", "first", "alice")
	svc.Create(context.Background(), "post-2", "other", "bob")

	rec := doJSON(e, http.MethodGet, "/api/comments/post-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
