package model

import "time"

// カート数量の上限・下限。
// 範囲外はエラーにせず境界値に丸める。
const (
	CartQuantityMin int64 = 1
	CartQuantityMax int64 = 999
)

// ClampQuantity は数量を[1,999]に丸める。
func ClampQuantity(qty int64) int64 {
	if qty < CartQuantityMin {
		return CartQuantityMin
	}
	if qty > CartQuantityMax {
		return CartQuantityMax
	}
	return qty
}

// カートの明細。
// 追加時点の価格（unit_price_snapshot）を必ず保存する。
// 同一カート内で同じ本は1行（数量で表現）。
type CartItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID            int64     `gorm:"not null;index;uniqueIndex:idx_cart_book" json:"cart_id"`
	BookID            int64     `gorm:"not null;index;uniqueIndex:idx_cart_book" json:"book_id"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	UnitPriceSnapshot int64     `gorm:"not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
