package usecase

import (
	"context"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	repo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/repository"
)

// レビュー一覧の並び替えモード。
const (
	ReviewSortNewest = "newest"
	ReviewSortLoved  = "loved"
)

// ComputeStats はレビューの集計を返す。
// counts は評価1〜5のヒストグラム（範囲外の評価は数えない）。
// average は小数1桁に丸める。0件なら全部0。
func ComputeStats(reviews []model.Review) model.ReviewStats {
	stats := model.ReviewStats{
		Counts: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	if len(reviews) == 0 {
		return stats
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
		bucket := r.Rating
		if bucket < 1 || bucket > 5 {
			continue
		}
		stats.Counts[bucket]++
	}

	stats.Total = len(reviews)
	stats.Average = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	return stats
}

// SortReviews は並び替え済みの新しいスライスを返す（元は変更しない）。
// newest: 作成日時の降順 / loved: いいね数の降順 / それ以外: 現在の順のまま。
func SortReviews(reviews []model.Review, mode string) []model.Review {
	out := make([]model.Review, len(reviews))
	copy(out, reviews)

	switch mode {
	case ReviewSortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case ReviewSortLoved:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LikeCount > out[j].LikeCount
		})
	}

	return out
}

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
	bookRepo   repo.BookRepository
	userRepo   repo.UserRepository
}

func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	bookRepo repo.BookRepository,
	userRepo repo.UserRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
	}
}

type ReplyResponse struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	OwnerName string    `json:"owner_name"`
	AvatarURL string    `json:"avatar_url"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewResponse struct {
	ID        int64           `json:"id"`
	OwnerID   int64           `json:"owner_id"`
	OwnerName string          `json:"owner_name"`
	AvatarURL string          `json:"avatar_url"`
	Rating    int             `json:"rating"`
	Content   string          `json:"content"`
	LikeCount int64           `json:"like_count"`
	CreatedAt time.Time       `json:"created_at"`
	Replies   []ReplyResponse `json:"replies"`
}

type ReviewListOutput struct {
	Items []ReviewResponse  `json:"items"`
	Stats model.ReviewStats `json:"stats"`
}

// ListBookReviews は本のレビューを返信・集計付きで返す。
func (u *ReviewUsecase) ListBookReviews(ctx context.Context, bookID int64, sortMode string) (ReviewListOutput, error) {
	if bookID <= 0 {
		return ReviewListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	switch sortMode {
	case "", ReviewSortNewest, ReviewSortLoved:
	default:
		return ReviewListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	reviews, err := u.reviewRepo.ListByBookID(ctx, bookID)
	if err != nil {
		return ReviewListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//集計は並び替え前の全件に対して行う
	stats := ComputeStats(reviews)
	reviews = SortReviews(reviews, sortMode)

	parentIDs := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		parentIDs = append(parentIDs, r.ID)
	}

	replies, err := u.reviewRepo.ListRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return ReviewListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ユーザー情報は同じIDを二度引かない
	users := map[int64]*model.User{}

	items := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		item := ReviewResponse{
			ID:        r.ID,
			OwnerID:   r.OwnerID,
			Rating:    r.Rating,
			Content:   r.Content,
			LikeCount: r.LikeCount,
			CreatedAt: r.CreatedAt,
			Replies:   []ReplyResponse{},
		}
		if owner := u.lookupUser(ctx, users, r.OwnerID); owner != nil {
			item.OwnerName = owner.Name
			item.AvatarURL = owner.AvatarURL
		}

		for _, rep := range replies[r.ID] {
			reply := ReplyResponse{
				ID:        rep.ID,
				OwnerID:   rep.OwnerID,
				Content:   rep.Content,
				CreatedAt: rep.CreatedAt,
			}
			if owner := u.lookupUser(ctx, users, rep.OwnerID); owner != nil {
				reply.OwnerName = owner.Name
				reply.AvatarURL = owner.AvatarURL
			}
			item.Replies = append(item.Replies, reply)
		}

		items = append(items, item)
	}

	return ReviewListOutput{Items: items, Stats: stats}, nil
}

// GetMyReview はupsertフォームの初期値用に自分のレビューを返す。
// 未投稿ならnil（エラーにしない）。
func (u *ReviewUsecase) GetMyReview(ctx context.Context, userID int64, bookID int64) (*model.Review, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if bookID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	r, err := u.reviewRepo.FindByBookAndOwner(ctx, bookID, userID)
	if err == repo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return &r, nil
}

type UpsertReviewInput struct {
	BookID  int64
	Rating  int
	Content string
}

// UpsertReview は1ユーザー1冊1レビューのupsert。
// 一意性はDB側の行ロックで守る（同時送信は後勝ち）。
func (u *ReviewUsecase) UpsertReview(ctx context.Context, userID int64, in UpsertReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.BookID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1-5")
	}
	if strings.TrimSpace(in.Content) == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "content required")
	}

	b, err := u.bookRepo.FindByID(ctx, in.BookID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !b.IsActive {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "book not found")
	}

	now := time.Now()
	saved, err := u.reviewRepo.UpsertByBookAndOwner(ctx, model.Review{
		BookID:    in.BookID,
		OwnerID:   userID,
		Rating:    in.Rating,
		Content:   strings.TrimSpace(in.Content),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return saved, nil
}

// DeleteReviewOrReply はレビューと返信を同じID空間で削除する。
// 本人か管理者だけが消せる。
func (u *ReviewUsecase) DeleteReviewOrReply(ctx context.Context, actor *model.User, id int64) error {
	if actor == nil || actor.ID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	target, err := u.reviewRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !actor.CanModify(target.OwnerID) {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.reviewRepo.DeleteByID(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// CreateReply はレビューへの返信を作る。
// 返信への返信は許さない（親はトップレベルのみ）。
func (u *ReviewUsecase) CreateReply(ctx context.Context, userID int64, reviewID int64, content string) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if reviewID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid review id")
	}
	if strings.TrimSpace(content) == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "content required")
	}

	parent, err := u.reviewRepo.FindByID(ctx, reviewID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "review not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if parent.IsReply() {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "cannot reply to a reply")
	}

	now := time.Now()
	parentID := parent.ID
	reply, err := u.reviewRepo.CreateReply(ctx, model.Review{
		BookID:    parent.BookID,
		OwnerID:   userID,
		ParentID:  &parentID,
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return reply, nil
}

// UpdateReply は返信の本文を書き換える。本人か管理者のみ。
func (u *ReviewUsecase) UpdateReply(ctx context.Context, actor *model.User, replyID int64, content string) (model.Review, error) {
	if actor == nil || actor.ID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if replyID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(content) == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "content required")
	}

	target, err := u.reviewRepo.FindByID(ctx, replyID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !target.IsReply() {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "not a reply")
	}

	if !actor.CanModify(target.OwnerID) {
		return model.Review{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if err := u.reviewRepo.UpdateContent(ctx, replyID, strings.TrimSpace(content)); err != nil {
		if err == repo.ErrNotFound {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.reviewRepo.FindByID(ctx, replyID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return updated, nil
}

// LikeReview はいいねを+1する。
func (u *ReviewUsecase) LikeReview(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.reviewRepo.IncrementLikeCount(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *ReviewUsecase) lookupUser(ctx context.Context, cache map[int64]*model.User, id int64) *model.User {
	if cached, ok := cache[id]; ok {
		return cached
	}
	owner, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		owner = nil
	}
	cache[id] = owner
	return owner
}
