package usecase

import (
	"context"
	"net/http"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// RepositoryはCartとCartItemを分離して受け取ります。
type CartUsecase struct {
	cartRepo      repo.CartRepository
	cartItemRepo  repo.CartItemRepository
	bookRepo      repo.BookRepository
	guestCartRepo repo.GuestCartRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	bookRepo repo.BookRepository,
	guestCartRepo repo.GuestCartRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:      cartRepo,
		cartItemRepo:  cartItemRepo,
		bookRepo:      bookRepo,
		guestCartRepo: guestCartRepo,
	}
}

// price は unit_price_snapshot（追加時点の価格）を返します。
type CartItemResponse struct {
	ID       int64  `json:"id"`
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	OldPrice int64  `json:"old_price"`
	ImageURL string `json:"image_url"`
	Quantity int64  `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int64              `json:"count"`
	Total int64              `json:"total"`
}

type AddCartInput struct {
	BookID   int64
	Quantity int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければACTIVEを作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddToCart はカートに追加（同一の本は数量加算、[1,999]に丸め）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.BookID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid book_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// ACTIVEカート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 書籍チェック（公開のみ）
	b, err := u.bookRepo.FindByID(ctx, in.BookID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !b.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	// Upsert（同一の本は加算、加算後[1,999]に丸め）
	// unit_price_snapshot は「追加時点の価格」を渡す
	if err := u.cartItemRepo.UpsertByCartAndBook(ctx, cart.ID, in.BookID, in.Quantity, b.Price); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// 数量変更（所有チェック＋[1,999]に丸め）。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, model.ClampQuantity(in.Quantity)); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ACTIVEカートを取得して返却
	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartResponse(ctx, cart.ID)
}

// 明細削除
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.buildCartResponse(ctx, cart.ID)
}

// カート全体を空にする（DELETE /cart）
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{Items: []CartItemResponse{}}, nil
}

// MergeGuestCart はログイン時に未ログインカートを取り込む。
// 同一の本は数量加算（[1,999]に丸め）、取り込み後にゲスト側を消す。
func (u *CartUsecase) MergeGuestCart(ctx context.Context, userID int64, guestToken string) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if guestToken == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart token")
	}

	guest, err := u.guestCartRepo.Read(ctx, guestToken)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	for _, it := range guest {
		if it.Quantity <= 0 {
			continue
		}

		//非公開・削除済みの本は黙って読み飛ばす
		b, err := u.bookRepo.FindByID(ctx, it.BookID)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !b.IsActive {
			continue
		}

		if err := u.cartItemRepo.UpsertByCartAndBook(ctx, cart.ID, it.BookID, model.ClampQuantity(it.Quantity), b.Price); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := u.guestCartRepo.Delete(ctx, guestToken); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart storage error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// cartIDの明細をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var count int64 = 0
	var total int64 = 0

	for _, it := range items {
		b, err := u.bookRepo.FindByID(ctx, it.BookID)
		if err != nil {
			continue
		}
		if !b.IsActive {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:       it.ID,
			BookID:   it.BookID,
			Title:    b.Title,
			Price:    it.UnitPriceSnapshot,
			OldPrice: b.OldPrice,
			ImageURL: b.ImageURL,
			Quantity: it.Quantity,
		})

		count += it.Quantity
		total += it.UnitPriceSnapshot * it.Quantity
	}

	return CartResponse{Items: respItems, Count: count, Total: total}, nil
}
