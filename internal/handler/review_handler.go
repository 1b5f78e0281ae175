package handler

import (
	"net/http"
	"strconv"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/middleware"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
)

// レビュー・返信のHTTP。レスポンスは{success,data,message}形式。
type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type UpsertReviewRequest struct {
	BookID  int64  `json:"book_id"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

type ReplyRequest struct {
	Content string `json:"content"`
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/books/:bookId/reviews", h.listBookReviews)

	auth := e.Group("/api", middleware.AuthJWT(cfg))
	auth.GET("/books/:bookId/my-review", h.getMyReview)
	auth.POST("/reviews", h.upsertReview)
	auth.DELETE("/reviews/:id", h.deleteReviewOrReply)
	auth.POST("/reviews/:reviewId/replies", h.createReply)
	auth.PUT("/replies/:replyId", h.updateReply)
	auth.POST("/reviews/:id/like", h.likeReview)
}

// 文脈のuser_id/user_roleから権限判定用のユーザーを組み立てる
func actorFromContext(c echo.Context) *model.User {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return nil
	}
	return &model.User{ID: userID, Role: model.Role(getUserRoleFromContext(c))}
}

func (h *ReviewHandler) listBookReviews(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid book id"))
	}

	out, err := h.uc.ListBookReviews(c.Request().Context(), bookID, c.QueryParam("sort"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *ReviewHandler) getMyReview(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid book id"))
	}

	out, err := h.uc.GetMyReview(c.Request().Context(), userID, bookID)
	if err != nil {
		return respondError(c, err)
	}
	// 未投稿ならdata: null
	return respondOK(c, http.StatusOK, out)
}

func (h *ReviewHandler) upsertReview(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	var req UpsertReviewRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	out, err := h.uc.UpsertReview(c.Request().Context(), userID, usecase.UpsertReviewInput{
		BookID:  req.BookID,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *ReviewHandler) deleteReviewOrReply(c echo.Context) error {
	actor := actorFromContext(c)
	if actor == nil {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	if err := h.uc.DeleteReviewOrReply(c.Request().Context(), actor, id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, nil)
}

func (h *ReviewHandler) createReply(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid review id"))
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	out, err := h.uc.CreateReply(c.Request().Context(), userID, reviewID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusCreated, out)
}

func (h *ReviewHandler) updateReply(c echo.Context) error {
	actor := actorFromContext(c)
	if actor == nil {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	replyID, err := strconv.ParseInt(c.Param("replyId"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid reply id"))
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	out, err := h.uc.UpdateReply(c.Request().Context(), actor, replyID, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *ReviewHandler) likeReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	if err := h.uc.LikeReview(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, nil)
}
