package model

import "time"

// タイムセール（期間限定の値引き企画）。
// end_time > start_time を必ず満たす（usecaseで検証）。
type FlashsaleCampaign struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null;index" json:"end_time"`
	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Items []FlashsaleItem `gorm:"foreignKey:CampaignID" json:"items,omitempty"`
}

// IsRunning は「有効かつ期間内」かどうか。
func (c FlashsaleCampaign) IsRunning(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartTime) && now.Before(c.EndTime)
}

// セール対象の1冊。(campaign_id, book_id)で一意、upsertで維持。
// sale_price < 本の定価 を必ず満たす（usecaseで検証）。
type FlashsaleItem struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CampaignID   int64     `gorm:"not null;index;uniqueIndex:idx_campaign_book" json:"campaign_id"`
	BookID       int64     `gorm:"not null;index;uniqueIndex:idx_campaign_book" json:"book_id"`
	SalePrice    int64     `gorm:"not null" json:"sale_price"`
	SaleQuantity int64     `gorm:"not null" json:"sale_quantity"`
	SoldQuantity int64     `gorm:"not null;default:0" json:"sold_quantity"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
