package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wunif/site-api/internal/core/domain"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, username, role string) int {
	t.Helper()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("username", username)
	c.Set("role", role)

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRequireRoles_AdminOrAbove(t *testing.T) {
	gate := RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)

	cases := []struct {
		role string
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleSuperAdmin, http.StatusOK},
		{domain.RoleUser, http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range cases {
		if got := runGate(t, gate, "someone", tc.role); got != tc.want {
			t.Errorf("role %q: expected %d, got %d", tc.role, tc.want, got)
		}
	}
}

func TestRequireReservedAdmin(t *testing.T) {
	gate := RequireReservedAdmin()

	// Only the reserved account passes, regardless of role claims.
	if got := runGate(t, gate, domain.ReservedAdminUsername, domain.RoleAdmin); got != http.StatusOK {
		t.Fatalf("reserved admin: expected 200, got %d", got)
	}
	if got := runGate(t, gate, "bob", domain.RoleAdmin); got != http.StatusForbidden {
		t.Fatalf("regular admin: expected 403, got %d", got)
	}
	if got := runGate(t, gate, "alice", domain.RoleSuperAdmin); got != http.StatusForbidden {
		t.Fatalf("super-admin role without reserved username: expected 403, got %d", got)
	}
	if got := runGate(t, gate, "", domain.RoleUser); got != http.StatusForbidden {
		t.Fatalf("anonymous: expected 403, got %d", got)
	}
}
