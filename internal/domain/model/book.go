package model

import (
	"time"

	"gorm.io/gorm"
)

type Book struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Author      string `gorm:"type:varchar(255)" json:"author"`
	Description string `gorm:"type:text" json:"description"`

	//現在の販売価格（最小通貨単位）
	Price int64 `gorm:"not null" json:"price"`

	//値下げ前の価格。0なら値下げなし
	OldPrice int64 `gorm:"not null;default:0" json:"old_price"`

	ImageURL  string         `gorm:"type:varchar(512)" json:"image_url"`
	Stock     int64          `gorm:"not null" json:"stock"`
	IsActive  bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
