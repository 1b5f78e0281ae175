package model_test

import (
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanModify(t *testing.T) {
	owner := &model.User{ID: 1, Role: model.RoleUser}
	other := &model.User{ID: 2, Role: model.RoleUser}
	admin := &model.User{ID: 2, Role: model.RoleAdmin}

	assert.True(t, owner.CanModify(1))
	assert.False(t, other.CanModify(1))
	assert.True(t, admin.CanModify(1))
}

// roleの比較は大文字小文字を区別しない
func TestUser_IsAdmin_CaseInsensitive(t *testing.T) {
	assert.True(t, (&model.User{Role: "admin"}).IsAdmin())
	assert.True(t, (&model.User{Role: "Admin"}).IsAdmin())
	assert.True(t, (&model.User{Role: model.RoleAdmin}).IsAdmin())
	assert.False(t, (&model.User{Role: "user"}).IsAdmin())
}

func TestUser_CanModify_NilUser(t *testing.T) {
	var u *model.User
	assert.False(t, u.CanModify(1))
	assert.False(t, u.IsAdmin())
}
