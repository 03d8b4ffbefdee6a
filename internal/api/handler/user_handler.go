package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/core/ports"
)

// UserHandler exposes admin user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type roleChangeRequest struct {
	Username string `json:"usernameToUpdate" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GrantAdmin handles POST /api/admin/grant-admin. Idempotent: granting a role
// the user already holds succeeds.
//
// @Summary      Grant the admin role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      roleChangeRequest  true  "Target username"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/grant-admin [post]
func (h *UserHandler) GrantAdmin(c echo.Context) error {
	var req roleChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.GrantAdmin(c.Request().Context(), actor, req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: req.Username + " is now an admin"})
}

// RevokeAdmin handles PUT /api/admin/revoke-admin.
//
// @Summary      Revoke the admin role from a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      roleChangeRequest  true  "Target username"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/revoke-admin [put]
func (h *UserHandler) RevokeAdmin(c echo.Context) error {
	var req roleChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.RevokeAdmin(c.Request().Context(), actor, req.Username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: req.Username + " is now a regular user"})
}

// Delete handles DELETE /api/admin/users/:id. The reserved admin account can
// never be deleted; deleting an already-absent user succeeds.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
