package usecase

import (
	"context"
	"net/http"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"

	"github.com/google/uuid"
)

// GuestCartUsecase は未ログインユーザーのカート（/guest-cart）。
// トークンはクライアントがX-Cart-Tokenで持ち回り、無ければ発行する。
type GuestCartUsecase struct {
	guestCartRepo repo.GuestCartRepository
	bookRepo      repo.BookRepository
}

func NewGuestCartUsecase(
	guestCartRepo repo.GuestCartRepository,
	bookRepo repo.BookRepository,
) *GuestCartUsecase {
	return &GuestCartUsecase{
		guestCartRepo: guestCartRepo,
		bookRepo:      bookRepo,
	}
}

type GuestCartResponse struct {
	Token string          `json:"token"`
	Items model.GuestCart `json:"items"`
	Count int64           `json:"count"`
	Total int64           `json:"total"`
}

// NewToken は新しいカートトークンを発行する。
func (u *GuestCartUsecase) NewToken() string {
	return uuid.NewString()
}

// GetCart はトークンのカートを返す。壊れた保存データは空カート扱い。
func (u *GuestCartUsecase) GetCart(ctx context.Context, token string) (GuestCartResponse, error) {
	if token == "" {
		token = u.NewToken()
	}

	cart, err := u.guestCartRepo.Read(ctx, token)
	if err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	return buildGuestCartResponse(token, cart), nil
}

// AddItem は本を追加する。同一の本は数量加算（[1,999]に丸め）。
func (u *GuestCartUsecase) AddItem(ctx context.Context, token string, bookID int64, qty int64) (GuestCartResponse, error) {
	if bookID <= 0 {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid book_id")
	}
	if qty < 1 {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if token == "" {
		token = u.NewToken()
	}

	b, err := u.bookRepo.FindByID(ctx, bookID)
	if err == repo.ErrNotFound {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !b.IsActive {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	cart, err := u.guestCartRepo.Read(ctx, token)
	if err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	cart = cart.Add(b, qty)

	if err := u.guestCartRepo.Write(ctx, token, cart); err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	return buildGuestCartResponse(token, cart), nil
}

// UpdateItem は数量を上書きする（[1,999]に丸め）。
func (u *GuestCartUsecase) UpdateItem(ctx context.Context, token string, bookID int64, qty int64) (GuestCartResponse, error) {
	if token == "" {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	if bookID <= 0 {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid book_id")
	}

	cart, err := u.guestCartRepo.Read(ctx, token)
	if err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	cart = cart.UpdateQuantity(bookID, qty)

	if err := u.guestCartRepo.Write(ctx, token, cart); err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	return buildGuestCartResponse(token, cart), nil
}

// RemoveItem は明細を削除する。
func (u *GuestCartUsecase) RemoveItem(ctx context.Context, token string, bookID int64) (GuestCartResponse, error) {
	if token == "" {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}
	if bookID <= 0 {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid book_id")
	}

	cart, err := u.guestCartRepo.Read(ctx, token)
	if err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	cart = cart.Remove(bookID)

	if err := u.guestCartRepo.Write(ctx, token, cart); err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	return buildGuestCartResponse(token, cart), nil
}

// ClearCart はカートを空にする。
func (u *GuestCartUsecase) ClearCart(ctx context.Context, token string) (GuestCartResponse, error) {
	if token == "" {
		return GuestCartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}

	if err := u.guestCartRepo.Delete(ctx, token); err != nil {
		return GuestCartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	return buildGuestCartResponse(token, model.GuestCart{}), nil
}

func buildGuestCartResponse(token string, cart model.GuestCart) GuestCartResponse {
	if cart == nil {
		cart = model.GuestCart{}
	}
	return GuestCartResponse{
		Token: token,
		Items: cart,
		Count: cart.Count(),
		Total: cart.Subtotal(),
	}
}
