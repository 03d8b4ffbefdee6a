package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      "64f000000000000000000001",
		"username": "alice",
		"role":     "user",
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, token string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()

	var captured echo.Context
	next := func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Auth(testSecret)(next)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, captured
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	rec, c := runAuth(t, token)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c == nil {
		t.Fatal("next handler was not called")
	}
	if got, _ := c.Get("username").(string); got != "alice" {
		t.Fatalf("expected username alice, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != "user" {
		t.Fatalf("expected role user, got %q", got)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	rec, c := runAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if c != nil {
		t.Fatal("next handler should not run")
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(-time.Minute))
	rec, c := runAuth(t, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if c != nil {
		t.Fatal("next handler should not run")
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))
	rec, _ := runAuth(t, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	rec, _ := runAuth(t, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
