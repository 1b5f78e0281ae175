package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	domainrepo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"

	"github.com/redis/go-redis/v9"
)

type GuestCartRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// DI
func NewGuestCartRedisRepository(client *redis.Client, ttl time.Duration) domainrepo.GuestCartRepository {
	return &GuestCartRedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *GuestCartRedisRepository) key(token string) string {
	return fmt.Sprintf("cart:guest:%s", token)
}

// Read はトークンのカートを取得。
// キーが無い・JSONが壊れている場合は空カート扱い（エラーにしない）。
func (r *GuestCartRedisRepository) Read(ctx context.Context, token string) (model.GuestCart, error) {
	data, err := r.client.Get(ctx, r.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return model.GuestCart{}, nil
	}
	if err != nil {
		return model.GuestCart{}, err
	}

	return decodeGuestCart([]byte(data)), nil
}

// decodeGuestCart は保存済みJSONをカートへ戻す。
// 壊れたデータは空カートとして読む（エラーにしない）。
func decodeGuestCart(data []byte) model.GuestCart {
	var cart model.GuestCart
	if err := json.Unmarshal(data, &cart); err != nil {
		return model.GuestCart{}
	}
	return cart
}

// Write はカートをJSONで保存（TTL付き）。
func (r *GuestCartRedisRepository) Write(ctx context.Context, token string, cart model.GuestCart) error {
	if cart == nil {
		cart = model.GuestCart{}
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(token), data, r.ttl).Err()
}

// Delete はカートを削除。
func (r *GuestCartRedisRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
