package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"
)

// 管理画面の日時入力はタイムゾーンなしのローカル時刻で届く。
const flashsaleTimeLayout = "2006-01-02T15:04"

// タイムセールの変更をSSEへ流すための約束。
// nilでも動く（開発時・テスト時）。
type FlashsaleEventPublisher interface {
	Publish(event string, payload interface{})
}

type FlashsaleUsecase struct {
	flashsaleRepo repo.FlashsaleRepository
	bookRepo      repo.BookRepository
	auditRepo     repo.AuditLogRepository
	events        FlashsaleEventPublisher

	//入力日時をどのタイムゾーンとして解釈するか
	loc *time.Location
}

func NewFlashsaleUsecase(
	flashsaleRepo repo.FlashsaleRepository,
	bookRepo repo.BookRepository,
	auditRepo repo.AuditLogRepository,
	events FlashsaleEventPublisher,
	loc *time.Location,
) *FlashsaleUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &FlashsaleUsecase{
		flashsaleRepo: flashsaleRepo,
		bookRepo:      bookRepo,
		auditRepo:     auditRepo,
		events:        events,
		loc:           loc,
	}
}

type CampaignInput struct {
	Name      string
	StartTime string
	EndTime   string
	IsActive  bool
}

// parseCampaignTimes は入力文字列を検証して絶対時刻（UTC）に直す。
// end <= start は送信前に弾く（ネットワークに乗せない）。
func (u *FlashsaleUsecase) parseCampaignTimes(in CampaignInput) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(flashsaleTimeLayout, in.StartTime, u.loc)
	if err != nil {
		return time.Time{}, time.Time{}, NewHTTPError(http.StatusBadRequest, "invalid start_time")
	}
	end, err := time.ParseInLocation(flashsaleTimeLayout, in.EndTime, u.loc)
	if err != nil {
		return time.Time{}, time.Time{}, NewHTTPError(http.StatusBadRequest, "invalid end_time")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, NewHTTPError(http.StatusBadRequest, "end_time must be after start_time")
	}
	return start.UTC(), end.UTC(), nil
}

// ListCampaigns は管理画面の一覧。
func (u *FlashsaleUsecase) ListCampaigns(ctx context.Context) ([]model.FlashsaleCampaign, error) {
	campaigns, err := u.flashsaleRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return campaigns, nil
}

// GetCampaignDetail は明細込みで1件返す。
func (u *FlashsaleUsecase) GetCampaignDetail(ctx context.Context, id int64) (model.FlashsaleCampaign, error) {
	if id <= 0 {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.flashsaleRepo.FindByIDWithItems(ctx, id)
	if err == repo.ErrNotFound {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// GetRunningCampaign は現在開催中のキャンペーン（公開API）。
// 開催中が無ければnilを返す（エラーにしない）。
func (u *FlashsaleUsecase) GetRunningCampaign(ctx context.Context) (*model.FlashsaleCampaign, error) {
	c, err := u.flashsaleRepo.FindRunning(ctx, time.Now().UTC())
	if err == repo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return &c, nil
}

// CreateCampaign はタイムセールを作成（管理者のみ）。
func (u *FlashsaleUsecase) CreateCampaign(ctx context.Context, adminUserID int64, in CampaignInput) (model.FlashsaleCampaign, error) {
	if adminUserID <= 0 {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	start, end, err := u.parseCampaignTimes(in)
	if err != nil {
		return model.FlashsaleCampaign{}, err
	}

	now := time.Now()
	c, err := u.flashsaleRepo.Create(ctx, model.FlashsaleCampaign{
		Name:      strings.TrimSpace(in.Name),
		StartTime: start,
		EndTime:   end,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpsertFlashsale, model.AuditResourceFlashsale, c.ID, "",
		fmt.Sprintf(`{"name":%q,"is_active":%t}`, c.Name, c.IsActive))
	u.publish("flashsale.updated", c)

	return c, nil
}

// UpdateCampaign はタイムセールを更新（管理者のみ）。
func (u *FlashsaleUsecase) UpdateCampaign(ctx context.Context, adminUserID int64, id int64, in CampaignInput) (model.FlashsaleCampaign, error) {
	if adminUserID <= 0 {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	start, end, err := u.parseCampaignTimes(in)
	if err != nil {
		return model.FlashsaleCampaign{}, err
	}

	before, err := u.flashsaleRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated := model.FlashsaleCampaign{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		StartTime: start,
		EndTime:   end,
		IsActive:  in.IsActive,
		UpdatedAt: time.Now(),
	}

	if err := u.flashsaleRepo.Update(ctx, updated); err != nil {
		if err == repo.ErrNotFound {
			return model.FlashsaleCampaign{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.FlashsaleCampaign{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpsertFlashsale, model.AuditResourceFlashsale, id,
		fmt.Sprintf(`{"name":%q,"is_active":%t}`, before.Name, before.IsActive),
		fmt.Sprintf(`{"name":%q,"is_active":%t}`, updated.Name, updated.IsActive))
	u.publish("flashsale.updated", updated)

	return updated, nil
}

// DeleteCampaign はタイムセールを明細ごと削除（管理者のみ）。
func (u *FlashsaleUsecase) DeleteCampaign(ctx context.Context, adminUserID int64, id int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.flashsaleRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionDeleteFlashsale, model.AuditResourceFlashsale, id, "", "")
	u.publish("flashsale.deleted", map[string]int64{"id": id})

	return nil
}

type UpsertItemInput struct {
	CampaignID   int64
	BookID       int64
	SalePrice    int64
	SaleQuantity int64
}

// UpsertItem はセール対象の追加・更新。
// (campaign, book)で一意：既存があるかはサーバが判断する。
// sale_priceは本の定価より必ず安く、sale_quantityは正の数。
func (u *FlashsaleUsecase) UpsertItem(ctx context.Context, adminUserID int64, in UpsertItemInput) (model.FlashsaleItem, error) {
	if adminUserID <= 0 {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.CampaignID <= 0 {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusBadRequest, "invalid campaign id")
	}
	if in.BookID <= 0 {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusBadRequest, "book required")
	}
	if in.SalePrice < 0 {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusBadRequest, "sale_price must be >= 0")
	}
	if in.SaleQuantity < 1 {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusBadRequest, "sale_quantity must be >= 1")
	}

	if _, err := u.flashsaleRepo.FindByID(ctx, in.CampaignID); err != nil {
		if err == repo.ErrNotFound {
			return model.FlashsaleItem{}, NewHTTPError(http.StatusNotFound, "campaign not found")
		}
		return model.FlashsaleItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b, err := u.bookRepo.FindByID(ctx, in.BookID)
	if err == repo.ErrNotFound {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !b.IsActive {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusBadRequest, "book not for sale")
	}

	//セール価格は定価より必ず安く
	if in.SalePrice >= b.Price {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusBadRequest, "sale_price must be less than book price")
	}

	now := time.Now()
	saved, err := u.flashsaleRepo.UpsertItem(ctx, model.FlashsaleItem{
		CampaignID:   in.CampaignID,
		BookID:       in.BookID,
		SalePrice:    in.SalePrice,
		SaleQuantity: in.SaleQuantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.FlashsaleItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpsertFlashsaleItem, model.AuditResourceFlashsaleItem, saved.ID, "",
		fmt.Sprintf(`{"book_id":%d,"sale_price":%d,"sale_quantity":%d}`, saved.BookID, saved.SalePrice, saved.SaleQuantity))
	u.publish("flashsale.item_updated", saved)

	return saved, nil
}

// DeleteItem はセール対象を外す（管理者のみ）。
func (u *FlashsaleUsecase) DeleteItem(ctx context.Context, adminUserID int64, itemID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.flashsaleRepo.DeleteItem(ctx, itemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionDeleteFlashsaleItem, model.AuditResourceFlashsaleItem, itemID, "", "")
	u.publish("flashsale.item_deleted", map[string]int64{"id": itemID})

	return nil
}

// 監査ログは本処理を失敗させない
func (u *FlashsaleUsecase) writeAudit(ctx context.Context, actorID int64, action model.AuditAction, resType model.AuditResourceType, resourceID int64, before string, after string) {
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: resType,
		ResourceID:   resourceID,
		BeforeJSON:   before,
		AfterJSON:    after,
		CreatedAt:    time.Now(),
	})
}

func (u *FlashsaleUsecase) publish(event string, payload interface{}) {
	if u.events == nil {
		return
	}
	u.events.Publish(event, payload)
}
