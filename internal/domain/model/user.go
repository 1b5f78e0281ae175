package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	//表示名
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//プロフィール画像URL
	AvatarURL string `gorm:"type:varchar(512)" json:"avatar_url"`

	Role        Role `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive    bool `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// roleの比較は大文字小文字を区別しない（"admin"も"ADMIN"も管理者扱い）
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(string(u.Role), string(RoleAdmin))
}

// CanModify は「本人か管理者だけが編集・削除できる」の判定。
// レビューと返信の所有者チェックで使う。
func (u *User) CanModify(ownerID int64) bool {
	if u == nil {
		return false
	}
	return u.ID == ownerID || u.IsAdmin()
}
