package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/api/metrics"
	"github.com/wunif/site-api/internal/core/ports"
)

// ContactHandler handles the public contact form and its admin review.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit handles POST /api/contactmessages (public).
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contactmessages [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.Submit(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "message received"})
}

// List handles GET /api/admin/contactmessages.
//
// @Summary      List contact messages, newest first
// @Tags         contact
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/contactmessages [get]
func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Delete handles DELETE /api/admin/contactmessages/:id.
//
// @Summary      Delete a contact message
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/contactmessages/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "message deleted"})
}
