package repository

import (
	"context"
	"errors"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

// DI
func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// 指定の本のトップレベルレビューを新しい順で返す
func (r *ReviewGormRepository) ListByBookID(ctx context.Context, bookID int64) ([]model.Review, error) {
	var reviews []model.Review

	if err := r.db.WithContext(ctx).
		Where("book_id = ? AND parent_id IS NULL", bookID).
		Order("created_at desc").
		Order("id desc").
		Find(&reviews).Error; err != nil {
		return []model.Review{}, err
	}

	return reviews, nil
}

// 返信を親IDごとにまとめて返す（作成日時の昇順）
func (r *ReviewGormRepository) ListRepliesByParentIDs(ctx context.Context, parentIDs []int64) (map[int64][]model.Review, error) {
	out := make(map[int64][]model.Review, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}

	var replies []model.Review
	if err := r.db.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at asc").
		Order("id asc").
		Find(&replies).Error; err != nil {
		return nil, err
	}

	for _, rep := range replies {
		out[*rep.ParentID] = append(out[*rep.ParentID], rep)
	}
	return out, nil
}

// ユーザーの既存レビューを1件取得
func (r *ReviewGormRepository) FindByBookAndOwner(ctx context.Context, bookID int64, ownerID int64) (model.Review, error) {
	var review model.Review

	err := r.db.WithContext(ctx).
		Where("book_id = ? AND owner_id = ? AND parent_id IS NULL", bookID, ownerID).
		First(&review).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Review{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// レビューまたは返信をIDで取得（同じID空間）
func (r *ReviewGormRepository) FindByID(ctx context.Context, id int64) (model.Review, error) {
	var review model.Review

	err := r.db.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Review{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// (book_id, owner_id)で一意のupsert。
// 同時に2タブから送信されても行ロックで後勝ちになる。
func (r *ReviewGormRepository) UpsertByBookAndOwner(ctx context.Context, review model.Review) (model.Review, error) {
	var saved model.Review

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Review

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("book_id = ? AND owner_id = ? AND parent_id IS NULL", review.BookID, review.OwnerID).
			First(&existing).Error

		if findErr == nil {
			//既存あり：本文と評価を上書き
			res := tx.Model(&model.Review{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"rating":  review.Rating,
					"content": review.Content,
				})
			if res.Error != nil {
				return res.Error
			}

			return tx.First(&saved, existing.ID).Error
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		//無ければ新規作成
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		saved = review
		return nil
	})

	if err != nil {
		return model.Review{}, err
	}
	return saved, nil
}

// 返信を作成
func (r *ReviewGormRepository) CreateReply(ctx context.Context, reply model.Review) (model.Review, error) {
	if err := r.db.WithContext(ctx).Create(&reply).Error; err != nil {
		return model.Review{}, err
	}
	return reply, nil
}

// 本文を更新
func (r *ReviewGormRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("id = ?", id).
		Update("content", content)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// レビューまたは返信を削除。レビューなら返信もまとめて消す
func (r *ReviewGormRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//ぶら下がる返信を先に削除
		if err := tx.Where("parent_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Review{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// いいねを+1
func (r *ReviewGormRepository) IncrementLikeCount(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
