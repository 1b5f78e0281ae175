package repository

import (
	"context"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
)

// レビューと返信の永続化を約束。
// 両者は同じテーブル（同じID空間）に入る。
type ReviewRepository interface {
	//指定の本のトップレベルレビューを作成日時の降順で返す
	ListByBookID(ctx context.Context, bookID int64) ([]model.Review, error)

	//指定レビュー群の返信を親ごとにまとめて返す（作成日時の昇順）
	ListRepliesByParentIDs(ctx context.Context, parentIDs []int64) (map[int64][]model.Review, error)

	//ユーザーの既存レビューを1件取得（無ければErrNotFound）
	FindByBookAndOwner(ctx context.Context, bookID int64, ownerID int64) (model.Review, error)

	FindByID(ctx context.Context, id int64) (model.Review, error)

	// (book_id, owner_id)で一意。既存があれば本文と評価を上書き
	UpsertByBookAndOwner(ctx context.Context, review model.Review) (model.Review, error)

	//返信を作成
	CreateReply(ctx context.Context, reply model.Review) (model.Review, error)

	//本文を更新（返信の編集で使う）
	UpdateContent(ctx context.Context, id int64, content string) error

	//レビューまたは返信を削除。レビューならぶら下がる返信も消す
	DeleteByID(ctx context.Context, id int64) error

	//いいねを+1
	IncrementLikeCount(ctx context.Context, id int64) error
}
