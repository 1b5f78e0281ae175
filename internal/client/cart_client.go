package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"
)

// CartClient は/cartリソースのラッパ。要Bearerトークン。
type CartClient struct {
	c *Client
}

func NewCartClient(c *Client) *CartClient {
	return &CartClient{c: c}
}

func (cc *CartClient) Get(ctx context.Context) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	err := cc.c.doPlain(ctx, http.MethodGet, "/cart", nil, nil, &out)
	return out, err
}

func (cc *CartClient) Add(ctx context.Context, bookID, quantity int64) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	body := map[string]int64{"book_id": bookID, "quantity": quantity}
	err := cc.c.doPlain(ctx, http.MethodPost, "/cart", body, nil, &out)
	return out, err
}

func (cc *CartClient) UpdateItem(ctx context.Context, cartItemID, quantity int64) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	body := map[string]int64{"quantity": quantity}
	err := cc.c.doPlain(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", cartItemID), body, nil, &out)
	return out, err
}

func (cc *CartClient) RemoveItem(ctx context.Context, cartItemID int64) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	err := cc.c.doPlain(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", cartItemID), nil, nil, &out)
	return out, err
}

func (cc *CartClient) Clear(ctx context.Context) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	err := cc.c.doPlain(ctx, http.MethodDelete, "/cart", nil, nil, &out)
	return out, err
}

// Merge はX-Cart-Tokenの未ログインカートをログイン済みカートへ取り込む。
func (cc *CartClient) Merge(ctx context.Context, guestToken string) (usecase.CartResponse, error) {
	var out usecase.CartResponse
	h := http.Header{}
	if guestToken != "" {
		h.Set("X-Cart-Token", guestToken)
	}
	err := cc.c.doPlain(ctx, http.MethodPost, "/cart/merge", nil, h, &out)
	return out, err
}
