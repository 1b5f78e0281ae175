package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(t *testing.T) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestActorFromContext_BuildsUserFromJWTClaims(t *testing.T) {
	c := newEchoContext(t)
	c.Set("user_id", int64(7))
	c.Set("user_role", "ADMIN")

	actor := actorFromContext(c)

	require.NotNil(t, actor)
	assert.Equal(t, int64(7), actor.ID)
	assert.Equal(t, model.Role("ADMIN"), actor.Role)
	assert.True(t, actor.IsAdmin())
	// 管理者は他人のレビューも触れる
	assert.True(t, actor.CanModify(999))
}

func TestActorFromContext_PlainUserRole(t *testing.T) {
	c := newEchoContext(t)
	c.Set("user_id", int64(3))
	c.Set("user_role", "USER")

	actor := actorFromContext(c)

	require.NotNil(t, actor)
	assert.Equal(t, model.RoleUser, actor.Role)
	assert.True(t, actor.CanModify(3))
	assert.False(t, actor.CanModify(4))
}

func TestActorFromContext_MissingUserID(t *testing.T) {
	c := newEchoContext(t)

	assert.Nil(t, actorFromContext(c))
}
