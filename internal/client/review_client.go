package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"
)

// ReviewClient は/api/reviews系のラッパ。
type ReviewClient struct {
	c *Client
}

func NewReviewClient(c *Client) *ReviewClient {
	return &ReviewClient{c: c}
}

func (rc *ReviewClient) ListForBook(ctx context.Context, bookID int64, sortMode string) (usecase.ReviewListOutput, error) {
	var out usecase.ReviewListOutput
	path := fmt.Sprintf("/api/books/%d/reviews", bookID)
	if sortMode != "" {
		path += "?sort=" + url.QueryEscape(sortMode)
	}
	err := rc.c.doEnvelope(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// MyReview はフォームの初期値用。未投稿ならnil。
func (rc *ReviewClient) MyReview(ctx context.Context, bookID int64) (*model.Review, error) {
	var out *model.Review
	err := rc.c.doEnvelope(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d/my-review", bookID), nil, &out)
	return out, err
}

// Upsert は投稿・更新を兼ねる。既存の有無はサーバが判断する。
func (rc *ReviewClient) Upsert(ctx context.Context, bookID int64, rating int, content string) (model.Review, error) {
	var out model.Review
	body := map[string]interface{}{
		"book_id": bookID,
		"rating":  rating,
		"content": content,
	}
	err := rc.c.doEnvelope(ctx, http.MethodPost, "/api/reviews", body, &out)
	return out, err
}

// Delete はレビューも返信も同じID空間で消す。
func (rc *ReviewClient) Delete(ctx context.Context, id int64) error {
	return rc.c.doEnvelope(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), nil, nil)
}

func (rc *ReviewClient) CreateReply(ctx context.Context, reviewID int64, content string) (model.Review, error) {
	var out model.Review
	body := map[string]string{"content": content}
	err := rc.c.doEnvelope(ctx, http.MethodPost, fmt.Sprintf("/api/reviews/%d/replies", reviewID), body, &out)
	return out, err
}

func (rc *ReviewClient) UpdateReply(ctx context.Context, replyID int64, content string) (model.Review, error) {
	var out model.Review
	body := map[string]string{"content": content}
	err := rc.c.doEnvelope(ctx, http.MethodPut, fmt.Sprintf("/api/replies/%d", replyID), body, &out)
	return out, err
}

func (rc *ReviewClient) Like(ctx context.Context, id int64) error {
	return rc.c.doEnvelope(ctx, http.MethodPost, fmt.Sprintf("/api/reviews/%d/like", id), nil, nil)
}
