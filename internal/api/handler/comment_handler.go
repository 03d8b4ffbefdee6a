package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/api/metrics"
	"github.com/wunif/site-api/internal/core/ports"
)

// CommentHandler handles comments on news posts.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	PostID  string `json:"postId"  validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ListByPost handles GET /api/comments/:postId (public, oldest first).
//
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        postId  path     string  true  "Post id"
// @Success      200     {array}  domain.Comment
// @Router       /api/comments/{postId} [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.service.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/comments. Author is the verified caller.
//
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), req.PostID, req.Content, author)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// Delete handles DELETE /api/comments/:id — allowed to the comment's author
// or any admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	username, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), username, role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment deleted"})
}
