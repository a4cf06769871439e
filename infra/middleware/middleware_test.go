package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/infra/token"

	"github.com/labstack/echo/v4"
)

func testMaker(t *testing.T) token.Maker {
	t.Helper()
	maker, err := token.NewPasetoMaker("01234567890123456789012345678901")
	if err != nil {
		t.Fatalf("NewPasetoMaker: %v", err)
	}
	return maker
}

func TestCheckAuthorizationAcceptsValidToken(t *testing.T) {
	maker := testMaker(t)
	valid, err := maker.CreateToken("dispatcher", time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/routes/1", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := CheckAuthorization(maker)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatalf("expected the wrapped handler to run")
	}
	if username, _ := c.Get("token_username").(string); username != "dispatcher" {
		t.Fatalf("token_username = %q, want dispatcher", username)
	}
	if raw, _ := c.Get("token_raw").(string); raw != valid {
		t.Fatalf("raw token must be exposed for peer-service calls")
	}
}

func TestCheckAuthorizationRejectsInvalidToken(t *testing.T) {
	maker := testMaker(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/routes/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := CheckAuthorization(maker)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if called {
		t.Fatalf("wrapped handler must not run for an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
