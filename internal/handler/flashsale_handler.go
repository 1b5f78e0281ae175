package handler

import (
	"net/http"
	"strconv"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/middleware"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
)

// フラッシュセール管理のHTTP。閲覧は誰でも、更新系は管理者のみ。
type FlashsaleHandler struct {
	uc *usecase.FlashsaleUsecase
}

func NewFlashsaleHandler(uc *usecase.FlashsaleUsecase) *FlashsaleHandler {
	return &FlashsaleHandler{uc: uc}
}

type CampaignRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

type UpsertFlashsaleItemRequest struct {
	CampaignID   int64 `json:"campaign_id"`
	BookID       int64 `json:"book_id"`
	SalePrice    int64 `json:"sale_price"`
	SaleQuantity int64 `json:"sale_quantity"`
}

func (h *FlashsaleHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/flashsales/active", h.getActive)

	admin := e.Group("/api/flashsales", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	admin.GET("", h.list)
	admin.GET("/:id", h.detail)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
	admin.POST("/items", h.upsertItem)
	admin.DELETE("/items/:id", h.deleteItem)
}

// 開催中のセール。無ければdata: null。
func (h *FlashsaleHandler) getActive(c echo.Context) error {
	out, err := h.uc.GetRunningCampaign(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *FlashsaleHandler) list(c echo.Context) error {
	out, err := h.uc.ListCampaigns(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *FlashsaleHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	out, err := h.uc.GetCampaignDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *FlashsaleHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	var req CampaignRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	out, err := h.uc.CreateCampaign(c.Request().Context(), userID, usecase.CampaignInput{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusCreated, out)
}

func (h *FlashsaleHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	var req CampaignRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	out, err := h.uc.UpdateCampaign(c.Request().Context(), userID, id, usecase.CampaignInput{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *FlashsaleHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	if err := h.uc.DeleteCampaign(c.Request().Context(), userID, id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, nil)
}

func (h *FlashsaleHandler) upsertItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	var req UpsertFlashsaleItemRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	out, err := h.uc.UpsertItem(c.Request().Context(), userID, usecase.UpsertItemInput{
		CampaignID:   req.CampaignID,
		BookID:       req.BookID,
		SalePrice:    req.SalePrice,
		SaleQuantity: req.SaleQuantity,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, out)
}

func (h *FlashsaleHandler) deleteItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	if err := h.uc.DeleteItem(c.Request().Context(), userID, id); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, http.StatusOK, nil)
}
