package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSSEHeaders_SetsStreamHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.SSEHeaders()(func(c echo.Context) error { return nil })
	assert.NoError(t, h(c))

	res := rec.Header()
	assert.Equal(t, "http://localhost:5173", res.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", res.Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "text/event-stream; charset=utf-8", res.Get("Content-Type"))
	assert.Equal(t, "no-cache, no-transform", res.Get("Cache-Control"))
	assert.Equal(t, "keep-alive", res.Get("Connection"))
	assert.Equal(t, "1", res.Get("x-no-compression"))
}

// Origin無しのリクエストにはACAOを付けない（credentialsと*は併用できない）
func TestSSEHeaders_NoOriginNoACAO(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.SSEHeaders()(func(c echo.Context) error { return nil })
	assert.NoError(t, h(c))

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
