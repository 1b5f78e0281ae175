package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlashsaleGormRepository struct {
	db *gorm.DB
}

// DI
func NewFlashsaleGormRepository(db *gorm.DB) *FlashsaleGormRepository {
	return &FlashsaleGormRepository{db: db}
}

// キャンペーン一覧（新しい順、明細なし）
func (r *FlashsaleGormRepository) List(ctx context.Context) ([]model.FlashsaleCampaign, error) {
	var campaigns []model.FlashsaleCampaign

	if err := r.db.WithContext(ctx).
		Order("start_time desc").
		Order("id desc").
		Find(&campaigns).Error; err != nil {
		return []model.FlashsaleCampaign{}, err
	}

	return campaigns, nil
}

// 明細込みで1件取得
func (r *FlashsaleGormRepository) FindByIDWithItems(ctx context.Context, id int64) (model.FlashsaleCampaign, error) {
	var c model.FlashsaleCampaign

	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&c, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FlashsaleCampaign{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FlashsaleCampaign{}, err
	}
	return c, nil
}

// 1件取得（明細なし）
func (r *FlashsaleGormRepository) FindByID(ctx context.Context, id int64) (model.FlashsaleCampaign, error) {
	var c model.FlashsaleCampaign

	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FlashsaleCampaign{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FlashsaleCampaign{}, err
	}
	return c, nil
}

// 現在開催中のキャンペーンを明細込みで1件
func (r *FlashsaleGormRepository) FindRunning(ctx context.Context, now time.Time) (model.FlashsaleCampaign, error) {
	var c model.FlashsaleCampaign

	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("is_active = ? AND start_time <= ? AND end_time > ?", true, now, now).
		Order("start_time desc").
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FlashsaleCampaign{}, repo.ErrNotFound
	}
	if err != nil {
		return model.FlashsaleCampaign{}, err
	}
	return c, nil
}

// キャンペーンの作成
func (r *FlashsaleGormRepository) Create(ctx context.Context, c model.FlashsaleCampaign) (model.FlashsaleCampaign, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.FlashsaleCampaign{}, err
	}
	return c, nil
}

// キャンペーンの更新
func (r *FlashsaleGormRepository) Update(ctx context.Context, c model.FlashsaleCampaign) error {
	res := r.db.WithContext(ctx).
		Model(&model.FlashsaleCampaign{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":       c.Name,
			"start_time": c.StartTime,
			"end_time":   c.EndTime,
			"is_active":  c.IsActive,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// キャンペーンと明細をまとめて削除
func (r *FlashsaleGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("campaign_id = ?", id).Delete(&model.FlashsaleItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.FlashsaleCampaign{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// (campaign_id, book_id)で一意のupsert。
// 既存があれば価格と数量を上書きする（sold_quantityは保持）。
func (r *FlashsaleGormRepository) UpsertItem(ctx context.Context, item model.FlashsaleItem) (model.FlashsaleItem, error) {
	var saved model.FlashsaleItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.FlashsaleItem

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ? AND book_id = ?", item.CampaignID, item.BookID).
			First(&existing).Error

		if findErr == nil {
			res := tx.Model(&model.FlashsaleItem{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"sale_price":    item.SalePrice,
					"sale_quantity": item.SaleQuantity,
				})
			if res.Error != nil {
				return res.Error
			}

			return tx.First(&saved, existing.ID).Error
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		saved = item
		return nil
	})

	if err != nil {
		return model.FlashsaleItem{}, err
	}
	return saved, nil
}

// 明細を削除
func (r *FlashsaleGormRepository) DeleteItem(ctx context.Context, itemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.FlashsaleItem{}, itemID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
