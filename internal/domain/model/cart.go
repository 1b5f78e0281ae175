package model

import "time"

type CartStatus string

// 注文機能は持たないので、カートの状態はACTIVEのみ。
// statusカラム自体は「1ユーザーにつきACTIVEは1つ」の検索条件として残す。
const CartStatusActive CartStatus = "ACTIVE"

// ログイン済みユーザーのカート本体。明細はCartItem。
type Cart struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Status    CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
