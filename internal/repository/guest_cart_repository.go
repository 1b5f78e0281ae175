package repository

import (
	"context"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
)

// 未ログインカートの保存先（Redis）。
type GuestCartRepository interface {
	// Read はトークンのカートを返す。
	// キーが無い・JSONが壊れている場合は空のカートを返し、エラーにしない。
	Read(ctx context.Context, token string) (model.GuestCart, error)

	Write(ctx context.Context, token string, cart model.GuestCart) error

	Delete(ctx context.Context, token string) error
}
