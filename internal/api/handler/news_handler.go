package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/api/metrics"
	"github.com/wunif/site-api/internal/core/ports"
)

// NewsHandler handles the news publishing endpoints. Reads are public, writes
// require an admin role (enforced by the router's middleware chain).
type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

type createNewsRequest struct {
	Title      string `json:"title"      validate:"required"`
	Content    string `json:"content"    validate:"required"`
	FontFamily string `json:"fontFamily" validate:"required"`
	ImageURL   string `json:"imageUrl"   validate:"required"`
}

// updateNewsRequest is a partial payload: empty fields keep stored values.
type updateNewsRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	FontFamily string `json:"fontFamily"`
	ImageURL   string `json:"imageUrl"`
}

// List handles GET /api/news.
//
// @Summary      List news posts, newest first
// @Tags         news
// @Produce      json
// @Success      200  {array}  domain.NewsPost
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/news/:id.
//
// @Summary      Get a news post
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.NewsPost
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /api/admin/news. Author is stamped from the acting
// admin's verified identity, never from the body.
//
// @Summary      Publish a news post
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        body  body      createNewsRequest  true  "Post"
// @Success      201   {object}  domain.NewsPost
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req createNewsRequest
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

	post, err := h.service.Create(c.Request().Context(), ports.CreateNewsInput{
		Title:      req.Title,
		Content:    req.Content,
		FontFamily: req.FontFamily,
		ImageURL:   req.ImageURL,
		Author:     author,
	})
	if err != nil {
		return err
	}

	metrics.NewsPostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/admin/news/:id.
//
// @Summary      Update a news post
// @Tags         news
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updateNewsRequest  true  "Partial post"
// @Success      200   {object}  domain.NewsPost
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateNewsInput{
		Title:      req.Title,
		Content:    req.Content,
		FontFamily: req.FontFamily,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/admin/news/:id.
//
// @Summary      Delete a news post
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "news post deleted"})
}
