package usecase_test

import (
	"context"
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newGuestCartUsecase() (*usecase.GuestCartUsecase, *CartGuestRepoMock, *CartBookRepoMock) {
	gRepo := new(CartGuestRepoMock)
	bRepo := new(CartBookRepoMock)
	return usecase.NewGuestCartUsecase(gRepo, bRepo), gRepo, bRepo
}

// トークン未提示のGETは新しいトークンを発行して空カートを返す
func TestGuestCartUsecase_GetCart_IssuesTokenWhenMissing(t *testing.T) {
	uc, gRepo, _ := newGuestCartUsecase()

	gRepo.On("Read", mock.Anything, mock.AnythingOfType("string")).Return(model.GuestCart{}, nil)

	out, err := uc.GetCart(context.Background(), "")
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Empty(t, out.Items)
	assert.Equal(t, int64(0), out.Count)
}

func TestGuestCartUsecase_AddItem_AccumulatesAndClamps(t *testing.T) {
	uc, gRepo, bRepo := newGuestCartUsecase()

	book := model.Book{ID: 10, Title: "Go本", Price: 1500, IsActive: true}
	existing := model.GuestCart{{BookID: 10, Title: "Go本", Price: 1500, Quantity: 990}}

	bRepo.On("FindByID", mock.Anything, int64(10)).Return(book, nil)
	gRepo.On("Read", mock.Anything, "tok").Return(existing, nil)
	gRepo.On("Write", mock.Anything, "tok", mock.MatchedBy(func(c model.GuestCart) bool {
		return len(c) == 1 && c[0].Quantity == 999
	})).Return(nil)

	out, err := uc.AddItem(context.Background(), "tok", 10, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(999), out.Count)

	gRepo.AssertExpectations(t)
}

func TestGuestCartUsecase_AddItem_InactiveBookRejected(t *testing.T) {
	uc, gRepo, bRepo := newGuestCartUsecase()

	bRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Book{ID: 10, IsActive: false}, nil)

	_, err := uc.AddItem(context.Background(), "tok", 10, 1)
	assert.Error(t, err)

	gRepo.AssertNotCalled(t, "Write")
}

func TestGuestCartUsecase_UpdateItem_RequiresToken(t *testing.T) {
	uc, gRepo, _ := newGuestCartUsecase()

	_, err := uc.UpdateItem(context.Background(), "", 10, 2)
	assertErrContains(t, err, "missing cart token")

	gRepo.AssertNotCalled(t, "Read")
}

func TestGuestCartUsecase_ClearCart_DeletesKey(t *testing.T) {
	uc, gRepo, _ := newGuestCartUsecase()

	gRepo.On("Delete", mock.Anything, "tok").Return(nil)

	out, err := uc.ClearCart(context.Background(), "tok")
	assert.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Empty(t, out.Items)

	gRepo.AssertExpectations(t)
}
