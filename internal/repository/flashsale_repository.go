package repository

import (
	"context"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
)

type FlashsaleRepository interface {
	List(ctx context.Context) ([]model.FlashsaleCampaign, error)

	//明細込みで1件取得
	FindByIDWithItems(ctx context.Context, id int64) (model.FlashsaleCampaign, error)

	FindByID(ctx context.Context, id int64) (model.FlashsaleCampaign, error)

	//現在開催中（is_activeかつ期間内）のキャンペーンを明細込みで1件
	FindRunning(ctx context.Context, now time.Time) (model.FlashsaleCampaign, error)

	Create(ctx context.Context, c model.FlashsaleCampaign) (model.FlashsaleCampaign, error)
	Update(ctx context.Context, c model.FlashsaleCampaign) error

	//キャンペーンと明細をまとめて削除
	Delete(ctx context.Context, id int64) error

	// (campaign_id, book_id)で一意。既存があれば価格と数量を上書き
	UpsertItem(ctx context.Context, item model.FlashsaleItem) (model.FlashsaleItem, error)

	DeleteItem(ctx context.Context, itemID int64) error
}
