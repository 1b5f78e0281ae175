package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type BookUsecase struct {
	bookRepo  repo.BookRepository
	auditRepo repo.AuditLogRepository
}

// DI
func NewBookUsecase(
	bookRepo repo.BookRepository,
	auditRepo repo.AuditLogRepository,
) *BookUsecase {
	return &BookUsecase{
		bookRepo:  bookRepo,
		auditRepo: auditRepo,
	}
}

// GET /api/booksの入力DTO
type ListBooksInput struct {
	Page     int
	Limit    int
	Q        string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

type BookListOutput struct {
	Items []model.Book `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *BookUsecase) ListPublicBooks(ctx context.Context, in ListBooksInput) (BookListOutput, error) {
	if in.Page < 1 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return BookListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.bookRepo.ListPublic(ctx, repo.BookListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        strings.TrimSpace(in.Q),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     in.Sort,
	})
	if err != nil {
		return BookListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return BookListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *BookUsecase) GetBookDetail(ctx context.Context, bookID int64) (model.Book, error) {
	if bookID <= 0 {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	b, err := u.bookRepo.FindByID(ctx, bookID)
	if err == repo.ErrNotFound {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !b.IsActive {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return b, nil
}

type AdminCreateBookInput struct {
	Title       string
	Author      string
	Description string
	Price       int64
	OldPrice    int64
	ImageURL    string
	Stock       int64
	IsActive    bool
}

func (u *BookUsecase) AdminCreateBook(ctx context.Context, adminUserID int64, in AdminCreateBookInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Title) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Price < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.OldPrice < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "old_price must be >= 0")
	}
	if in.Stock < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	now := time.Now()
	b, err := u.bookRepo.Create(ctx, model.Book{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Description: in.Description,
		Price:       in.Price,
		OldPrice:    in.OldPrice,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpsertBook, b.ID, "", fmt.Sprintf(`{"title":%q,"price":%d}`, b.Title, b.Price))

	return b.ID, nil
}

func (u *BookUsecase) AdminUpdateBook(ctx context.Context, adminUserID int64, bookID int64, in AdminCreateBookInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bookID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	//変更前のスナップショット
	before, err := u.bookRepo.FindByID(ctx, bookID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.bookRepo.Update(ctx, model.Book{
		ID:          bookID,
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Description: in.Description,
		Price:       in.Price,
		OldPrice:    in.OldPrice,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
		UpdatedAt:   time.Now(),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpsertBook, bookID,
		fmt.Sprintf(`{"title":%q,"price":%d}`, before.Title, before.Price),
		fmt.Sprintf(`{"title":%q,"price":%d}`, strings.TrimSpace(in.Title), in.Price))

	return nil
}

func (u *BookUsecase) AdminDeleteBook(ctx context.Context, adminUserID int64, bookID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bookID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	err := u.bookRepo.SoftDelete(ctx, bookID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionDeleteBook, bookID, "", "")

	return nil
}

// 監査ログは本処理を失敗させない（書けなくても操作自体は成立）
func (u *BookUsecase) writeAudit(ctx context.Context, actorID int64, action model.AuditAction, resourceID int64, before string, after string) {
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: model.AuditResourceBook,
		ResourceID:   resourceID,
		BeforeJSON:   before,
		AfterJSON:    after,
		CreatedAt:    time.Now(),
	})
}
