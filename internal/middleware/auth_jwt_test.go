package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return tok
}

func callAuthJWT(cfg config.Config, authz string) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := middleware.AuthJWT(cfg)(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	if captured == nil {
		captured = c
	}
	return rec, captured, err
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: "s3cret"}

	rec, _, err := callAuthJWT(cfg, "")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_InvalidSignature(t *testing.T) {
	cfg := config.Config{JWTSecret: "s3cret"}
	tok := signToken(t, "other-secret", jwt.MapClaims{"sub": "1", "role": "USER"})

	rec, _, err := callAuthJWT(cfg, "Bearer "+tok)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	cfg := config.Config{JWTSecret: "s3cret"}
	tok := signToken(t, "s3cret", jwt.MapClaims{
		"sub":  "1",
		"role": "USER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	rec, _, err := callAuthJWT(cfg, "Bearer "+tok)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_SetsUserIDAndRole(t *testing.T) {
	cfg := config.Config{JWTSecret: "s3cret"}
	tok := signToken(t, "s3cret", jwt.MapClaims{
		"sub":  "42",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	rec, c, err := callAuthJWT(cfg, "Bearer "+tok)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get(middleware.CtxUserIDKey))
	assert.Equal(t, "ADMIN", c.Get(middleware.CtxUserRoleKey))
}

func TestAdminRoleGuard(t *testing.T) {
	e := echo.New()

	run := func(role interface{}) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/flashsales", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set(middleware.CtxUserRoleKey, role)
		}

		h := middleware.AdminRoleGuard()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		_ = h(c)
		return rec
	}

	assert.Equal(t, http.StatusOK, run("ADMIN").Code)
	//大文字小文字は区別しない
	assert.Equal(t, http.StatusOK, run("admin").Code)
	assert.Equal(t, http.StatusForbidden, run("USER").Code)
	assert.Equal(t, http.StatusUnauthorized, run(nil).Code)
}

func TestRateLimit_RejectsAfterBurst(t *testing.T) {
	e := echo.New()
	h := middleware.RateLimit(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rec := httptest.NewRecorder()
		_ = h(e.NewContext(req, rec))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
