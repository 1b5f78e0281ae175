package usecase_test

import (
	"context"
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type BookRepoMock struct{ mock.Mock }

func (m *BookRepoMock) ListPublic(ctx context.Context, q repo.BookListQuery) ([]model.Book, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Book)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *BookRepoMock) FindByID(ctx context.Context, id int64) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

func (m *BookRepoMock) Create(ctx context.Context, b model.Book) (model.Book, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(model.Book)
	return created, args.Error(1)
}

func (m *BookRepoMock) Update(ctx context.Context, b model.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BookAuditRepoMock struct{ mock.Mock }

func (m *BookAuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	m.Called(ctx, log)
	return nil
}

func (m *BookAuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	panic("not used in BookUsecase tests")
}

func newBookUsecase() (*usecase.BookUsecase, *BookRepoMock, *BookAuditRepoMock) {
	bRepo := new(BookRepoMock)
	aRepo := new(BookAuditRepoMock)
	aRepo.On("Create", mock.Anything, mock.Anything).Maybe()
	return usecase.NewBookUsecase(bRepo, aRepo), bRepo, aRepo
}

// =====================
// Public: List / Detail
// =====================

func TestBookUsecase_ListPublicBooks_InvalidPage(t *testing.T) {
	uc, _, _ := newBookUsecase()

	_, err := uc.ListPublicBooks(context.Background(), usecase.ListBooksInput{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestBookUsecase_ListPublicBooks_InvalidLimit(t *testing.T) {
	uc, _, _ := newBookUsecase()

	_, err := uc.ListPublicBooks(context.Background(), usecase.ListBooksInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestBookUsecase_ListPublicBooks_MinAboveMax(t *testing.T) {
	uc, _, _ := newBookUsecase()

	min, max := int64(1000), int64(500)
	_, err := uc.ListPublicBooks(context.Background(), usecase.ListBooksInput{
		Page: 1, Limit: 20, MinPrice: &min, MaxPrice: &max,
	})
	assertErrContains(t, err, "min_price must be <= max_price")
}

func TestBookUsecase_ListPublicBooks_Success(t *testing.T) {
	uc, bRepo, _ := newBookUsecase()

	in := usecase.ListBooksInput{Page: 1, Limit: 20, Q: "golang", Sort: "price_asc"}
	q := repo.BookListQuery{Page: 1, Limit: 20, Q: "golang", Sort: "price_asc"}

	items := []model.Book{{ID: 1, Title: "A", IsActive: true}}
	bRepo.On("ListPublic", mock.Anything, q).Return(items, int64(1), nil)

	out, err := uc.ListPublicBooks(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, 1, len(out.Items))

	bRepo.AssertExpectations(t)
}

func TestBookUsecase_GetBookDetail_NotFound_WhenInactive(t *testing.T) {
	uc, bRepo, _ := newBookUsecase()

	bRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Book{ID: 1, IsActive: false}, nil)

	_, err := uc.GetBookDetail(context.Background(), 1)
	assertErrContains(t, err, "not found")
}

func TestBookUsecase_GetBookDetail_Success(t *testing.T) {
	uc, bRepo, _ := newBookUsecase()

	bRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Book{ID: 1, IsActive: true}, nil)

	b, err := uc.GetBookDetail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
}

// =====================
// Admin CRUD
// =====================

func TestBookUsecase_AdminCreateBook_Validation(t *testing.T) {
	uc, _, _ := newBookUsecase()

	_, err := uc.AdminCreateBook(context.Background(), 1, usecase.AdminCreateBookInput{Title: " ", Price: 100})
	assertErrContains(t, err, "title required")
}

func TestBookUsecase_AdminCreateBook_Success(t *testing.T) {
	uc, bRepo, aRepo := newBookUsecase()

	bRepo.On("Create", mock.Anything, mock.MatchedBy(func(b model.Book) bool {
		return b.Title == "Go言語" && b.Price == 2800 && b.IsActive
	})).Return(model.Book{ID: 123, Title: "Go言語", Price: 2800}, nil)

	id, err := uc.AdminCreateBook(context.Background(), 1, usecase.AdminCreateBookInput{
		Title:    " Go言語 ",
		Price:    2800,
		Stock:    10,
		IsActive: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(123), id)

	bRepo.AssertExpectations(t)
	aRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookUsecase_AdminDeleteBook_NotFound(t *testing.T) {
	uc, bRepo, _ := newBookUsecase()

	bRepo.On("SoftDelete", mock.Anything, int64(9)).Return(repo.ErrNotFound)

	err := uc.AdminDeleteBook(context.Background(), 1, 9)
	assertErrContains(t, err, "not found")
}
