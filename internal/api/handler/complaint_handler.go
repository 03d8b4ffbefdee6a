package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/api/metrics"
	"github.com/wunif/site-api/internal/core/ports"
)

// ComplaintHandler handles the complaint/suggestion mailbox.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

type complaintRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Kind    string `json:"type"    validate:"required,oneof=queja sugerencia"`
	Message string `json:"message" validate:"required"`
}

type replyRequest struct {
	ReplyMessage string `json:"replyMessage" validate:"required"`
}

// Submit handles POST /api/complaints-suggestions (public; the SPA sends a
// token when logged in, but none is required).
//
// @Summary      Submit a complaint or suggestion
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        body  body      complaintRequest  true  "Submission"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/complaints-suggestions [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req complaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.Submit(c.Request().Context(), req.Name, req.Email, req.Kind, req.Message); err != nil {
		return err
	}

	metrics.ComplaintsReceivedTotal.WithLabelValues(req.Kind).Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "submission received"})
}

// List handles GET /api/admin/complaints-suggestions.
//
// @Summary      List complaints and suggestions, newest first
// @Tags         complaints
// @Produce      json
// @Success      200  {array}   domain.ComplaintSuggestion
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/complaints-suggestions [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Reply handles PUT /api/admin/complaints-suggestions/:id/reply: records the
// response and resolves the entry.
//
// @Summary      Reply to a complaint or suggestion
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Entry id"
// @Param        body  body      replyRequest  true  "Reply"
// @Success      200   {object}  domain.ComplaintSuggestion
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/complaints-suggestions/{id}/reply [put]
func (h *ComplaintHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cs, err := h.service.Reply(c.Request().Context(), c.Param("id"), req.ReplyMessage)
	if err != nil {
		return err
	}

	metrics.ComplaintsResolvedTotal.Inc()
	return c.JSON(http.StatusOK, cs)
}

// Delete handles DELETE /api/admin/complaints-suggestions/:id. Allowed from
// either status.
//
// @Summary      Delete a complaint or suggestion
// @Tags         complaints
// @Produce      json
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/complaints-suggestions/{id} [delete]
func (h *ComplaintHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "entry deleted"})
}
