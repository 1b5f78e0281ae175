package model

import "time"

// レビューと返信は同じテーブル・同じID空間。
// ParentIDがnilならレビュー本体、入っていれば返信。
// トップレベルのレビューは1ユーザー1冊につき1件（upsertで維持）。
type Review struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID  int64  `gorm:"not null;index" json:"book_id"`
	OwnerID int64  `gorm:"not null;index" json:"owner_id"`
	ParentID *int64 `gorm:"index" json:"parent_id,omitempty"`

	//1〜5。返信では使わない（0のまま）
	Rating int `gorm:"not null;default:0" json:"rating"`

	Content   string    `gorm:"type:text;not null" json:"content"`
	LikeCount int64     `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// IsReply は返信かどうか。
func (r Review) IsReply() bool {
	return r.ParentID != nil
}

// レビューの集計結果。
// Countsは丸めた評価（1〜5）ごとの件数。
type ReviewStats struct {
	Total   int         `json:"total"`
	Average float64     `json:"average"`
	Counts  map[int]int `json:"counts"`
}
