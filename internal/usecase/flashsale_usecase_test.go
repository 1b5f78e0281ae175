package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type FsRepoMock struct{ mock.Mock }

func (m *FsRepoMock) List(ctx context.Context) ([]model.FlashsaleCampaign, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.FlashsaleCampaign)
	return items, args.Error(1)
}

func (m *FsRepoMock) FindByIDWithItems(ctx context.Context, id int64) (model.FlashsaleCampaign, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.FlashsaleCampaign)
	return c, args.Error(1)
}

func (m *FsRepoMock) FindByID(ctx context.Context, id int64) (model.FlashsaleCampaign, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.FlashsaleCampaign)
	return c, args.Error(1)
}

func (m *FsRepoMock) FindRunning(ctx context.Context, now time.Time) (model.FlashsaleCampaign, error) {
	args := m.Called(ctx, now)
	c, _ := args.Get(0).(model.FlashsaleCampaign)
	return c, args.Error(1)
}

func (m *FsRepoMock) Create(ctx context.Context, c model.FlashsaleCampaign) (model.FlashsaleCampaign, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.FlashsaleCampaign)
	return created, args.Error(1)
}

func (m *FsRepoMock) Update(ctx context.Context, c model.FlashsaleCampaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *FsRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FsRepoMock) UpsertItem(ctx context.Context, item model.FlashsaleItem) (model.FlashsaleItem, error) {
	args := m.Called(ctx, item)
	saved, _ := args.Get(0).(model.FlashsaleItem)
	return saved, args.Error(1)
}

func (m *FsRepoMock) DeleteItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type FsBookRepoMock struct{ mock.Mock }

func (m *FsBookRepoMock) ListPublic(ctx context.Context, q repo.BookListQuery) ([]model.Book, int64, error) {
	panic("not used in FlashsaleUsecase tests")
}

func (m *FsBookRepoMock) FindByID(ctx context.Context, id int64) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

func (m *FsBookRepoMock) Create(ctx context.Context, b model.Book) (model.Book, error) {
	panic("not used in FlashsaleUsecase tests")
}

func (m *FsBookRepoMock) Update(ctx context.Context, b model.Book) error {
	panic("not used in FlashsaleUsecase tests")
}

func (m *FsBookRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in FlashsaleUsecase tests")
}

type FsAuditRepoMock struct{ mock.Mock }

func (m *FsAuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	m.Called(ctx, log)
	return nil
}

func (m *FsAuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	panic("not used in FlashsaleUsecase tests")
}

type FsPublisherMock struct{ mock.Mock }

func (m *FsPublisherMock) Publish(event string, payload interface{}) {
	m.Called(event, payload)
}

func newFlashsaleUsecase() (*usecase.FlashsaleUsecase, *FsRepoMock, *FsBookRepoMock, *FsAuditRepoMock, *FsPublisherMock) {
	fRepo := new(FsRepoMock)
	bRepo := new(FsBookRepoMock)
	aRepo := new(FsAuditRepoMock)
	pub := new(FsPublisherMock)
	aRepo.On("Create", mock.Anything, mock.Anything).Maybe()
	pub.On("Publish", mock.Anything, mock.Anything).Maybe()
	uc := usecase.NewFlashsaleUsecase(fRepo, bRepo, aRepo, pub, time.UTC)
	return uc, fRepo, bRepo, aRepo, pub
}

// =====================
// Campaign
// =====================

// end <= start は一切書き込む前に弾く
func TestFlashsaleUsecase_CreateCampaign_EndBeforeStart(t *testing.T) {
	uc, fRepo, _, _, _ := newFlashsaleUsecase()

	_, err := uc.CreateCampaign(context.Background(), 1, usecase.CampaignInput{
		Name:      "autumn sale",
		StartTime: "2026-09-01T12:00",
		EndTime:   "2026-09-01T10:00",
	})
	assertErrContains(t, err, "end_time must be after start_time")

	fRepo.AssertNotCalled(t, "Create")
}

func TestFlashsaleUsecase_CreateCampaign_EqualTimesRejected(t *testing.T) {
	uc, fRepo, _, _, _ := newFlashsaleUsecase()

	_, err := uc.CreateCampaign(context.Background(), 1, usecase.CampaignInput{
		Name:      "autumn sale",
		StartTime: "2026-09-01T12:00",
		EndTime:   "2026-09-01T12:00",
	})
	assertErrContains(t, err, "end_time must be after start_time")

	fRepo.AssertNotCalled(t, "Create")
}

func TestFlashsaleUsecase_CreateCampaign_InvalidTimeFormat(t *testing.T) {
	uc, fRepo, _, _, _ := newFlashsaleUsecase()

	_, err := uc.CreateCampaign(context.Background(), 1, usecase.CampaignInput{
		Name:      "autumn sale",
		StartTime: "2026/09/01 12:00",
		EndTime:   "2026-09-02T12:00",
	})
	assertErrContains(t, err, "invalid start_time")

	fRepo.AssertNotCalled(t, "Create")
}

func TestFlashsaleUsecase_CreateCampaign_Success(t *testing.T) {
	uc, fRepo, _, _, pub := newFlashsaleUsecase()

	fRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.FlashsaleCampaign) bool {
		//UTCで保存される
		return c.Name == "autumn sale" &&
			c.StartTime.Equal(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)) &&
			c.EndTime.Equal(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	})).Return(model.FlashsaleCampaign{ID: 5, Name: "autumn sale"}, nil)

	c, err := uc.CreateCampaign(context.Background(), 1, usecase.CampaignInput{
		Name:      " autumn sale ",
		StartTime: "2026-09-01T10:00",
		EndTime:   "2026-09-01T12:00",
		IsActive:  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), c.ID)

	fRepo.AssertExpectations(t)
	pub.AssertCalled(t, "Publish", "flashsale.updated", mock.Anything)
}

func TestFlashsaleUsecase_GetRunningCampaign_NilWhenNone(t *testing.T) {
	uc, fRepo, _, _, _ := newFlashsaleUsecase()

	fRepo.On("FindRunning", mock.Anything, mock.Anything).Return(model.FlashsaleCampaign{}, repo.ErrNotFound)

	got, err := uc.GetRunningCampaign(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// =====================
// Item
// =====================

func TestFlashsaleUsecase_UpsertItem_SalePriceNotBelowBookPrice(t *testing.T) {
	uc, fRepo, bRepo, _, _ := newFlashsaleUsecase()

	fRepo.On("FindByID", mock.Anything, int64(5)).Return(model.FlashsaleCampaign{ID: 5}, nil)
	bRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, Price: 1000, IsActive: true}, nil)

	_, err := uc.UpsertItem(context.Background(), 1, usecase.UpsertItemInput{
		CampaignID:   5,
		BookID:       10,
		SalePrice:    1000, //定価と同額はNG
		SaleQuantity: 3,
	})
	assertErrContains(t, err, "sale_price must be less than book price")

	fRepo.AssertNotCalled(t, "UpsertItem")
}

func TestFlashsaleUsecase_UpsertItem_InvalidQuantity(t *testing.T) {
	uc, fRepo, _, _, _ := newFlashsaleUsecase()

	_, err := uc.UpsertItem(context.Background(), 1, usecase.UpsertItemInput{
		CampaignID:   5,
		BookID:       10,
		SalePrice:    500,
		SaleQuantity: 0,
	})
	assertErrContains(t, err, "sale_quantity must be >= 1")

	fRepo.AssertNotCalled(t, "FindByID")
}

func TestFlashsaleUsecase_UpsertItem_Success(t *testing.T) {
	uc, fRepo, bRepo, _, pub := newFlashsaleUsecase()

	fRepo.On("FindByID", mock.Anything, int64(5)).Return(model.FlashsaleCampaign{ID: 5}, nil)
	bRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, Price: 1000, IsActive: true}, nil)
	fRepo.On("UpsertItem", mock.Anything, mock.MatchedBy(func(it model.FlashsaleItem) bool {
		return it.CampaignID == 5 && it.BookID == 10 && it.SalePrice == 700 && it.SaleQuantity == 3
	})).Return(model.FlashsaleItem{ID: 2, CampaignID: 5, BookID: 10, SalePrice: 700, SaleQuantity: 3}, nil)

	saved, err := uc.UpsertItem(context.Background(), 1, usecase.UpsertItemInput{
		CampaignID:   5,
		BookID:       10,
		SalePrice:    700,
		SaleQuantity: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), saved.ID)

	fRepo.AssertExpectations(t)
	pub.AssertCalled(t, "Publish", "flashsale.item_updated", mock.Anything)
}

func TestFlashsaleUsecase_DeleteCampaign_NotFound(t *testing.T) {
	uc, fRepo, _, _, _ := newFlashsaleUsecase()

	fRepo.On("Delete", mock.Anything, int64(9)).Return(repo.ErrNotFound)

	err := uc.DeleteCampaign(context.Background(), 1, 9)
	assertErrContains(t, err, "not found")
}
