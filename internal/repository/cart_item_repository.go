package repository

import (
	"context"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// 同一の本は数量加算。加算後の数量は[1,999]に丸める
	UpsertByCartAndBook(ctx context.Context, cartID int64, bookID int64, addQty int64, unitPriceSnapshot int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error)
}
