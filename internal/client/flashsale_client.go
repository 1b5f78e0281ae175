package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
)

// FlashsaleClient は/api/flashsales系のラッパ。更新系は管理者トークンが要る。
type FlashsaleClient struct {
	c *Client
}

func NewFlashsaleClient(c *Client) *FlashsaleClient {
	return &FlashsaleClient{c: c}
}

type CampaignForm struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

type ItemForm struct {
	CampaignID   int64 `json:"campaign_id"`
	BookID       int64 `json:"book_id"`
	SalePrice    int64 `json:"sale_price"`
	SaleQuantity int64 `json:"sale_quantity"`
}

func (fc *FlashsaleClient) List(ctx context.Context) ([]model.FlashsaleCampaign, error) {
	var out []model.FlashsaleCampaign
	err := fc.c.doEnvelope(ctx, http.MethodGet, "/api/flashsales", nil, &out)
	return out, err
}

func (fc *FlashsaleClient) Detail(ctx context.Context, id int64) (model.FlashsaleCampaign, error) {
	var out model.FlashsaleCampaign
	err := fc.c.doEnvelope(ctx, http.MethodGet, fmt.Sprintf("/api/flashsales/%d", id), nil, &out)
	return out, err
}

// Active は開催中のセール。無ければnil。
func (fc *FlashsaleClient) Active(ctx context.Context) (*model.FlashsaleCampaign, error) {
	var out *model.FlashsaleCampaign
	err := fc.c.doEnvelope(ctx, http.MethodGet, "/api/flashsales/active", nil, &out)
	return out, err
}

func (fc *FlashsaleClient) Create(ctx context.Context, form CampaignForm) (model.FlashsaleCampaign, error) {
	var out model.FlashsaleCampaign
	err := fc.c.doEnvelope(ctx, http.MethodPost, "/api/flashsales", form, &out)
	return out, err
}

func (fc *FlashsaleClient) Update(ctx context.Context, id int64, form CampaignForm) (model.FlashsaleCampaign, error) {
	var out model.FlashsaleCampaign
	err := fc.c.doEnvelope(ctx, http.MethodPut, fmt.Sprintf("/api/flashsales/%d", id), form, &out)
	return out, err
}

func (fc *FlashsaleClient) Delete(ctx context.Context, id int64) error {
	return fc.c.doEnvelope(ctx, http.MethodDelete, fmt.Sprintf("/api/flashsales/%d", id), nil, nil)
}

// UpsertItem は(campaign, book)で一意。既存の有無はサーバが判断する。
func (fc *FlashsaleClient) UpsertItem(ctx context.Context, form ItemForm) (model.FlashsaleItem, error) {
	var out model.FlashsaleItem
	err := fc.c.doEnvelope(ctx, http.MethodPost, "/api/flashsales/items", form, &out)
	return out, err
}

func (fc *FlashsaleClient) DeleteItem(ctx context.Context, id int64) error {
	return fc.c.doEnvelope(ctx, http.MethodDelete, fmt.Sprintf("/api/flashsales/items/%d", id), nil, nil)
}
