package handler

import (
	"net/http"
	"strconv"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/middleware"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/books の公開API と /api/admin/books の管理API
type BookHandler struct {
	uc *usecase.BookUsecase
}

// DI
func NewBookHandler(uc *usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

type AdminBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	OldPrice    int64  `json:"old_price"`
	ImageURL    string `json:"image_url"`
	Stock       int64  `json:"stock"`
	IsActive    bool   `json:"is_active"`
}

func (h *BookHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/books", h.list)
	e.GET("/api/books/:id", h.detail)

	g := e.Group("/api/admin/books")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.adminCreate)
	g.PUT("/:id", h.adminUpdate)
	g.DELETE("/:id", h.adminDelete)
}

func (h *BookHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid page"))
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid limit"))
		}
		limit = l
	}

	q := c.QueryParam("q")
	sort := c.QueryParam("sort")

	var minPrice *int64
	if v := c.QueryParam("min_price"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid min_price"))
		}
		minPrice = &x
	}

	var maxPrice *int64
	if v := c.QueryParam("max_price"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid max_price"))
		}
		maxPrice = &x
	}

	out, err := h.uc.ListPublicBooks(c.Request().Context(), usecase.ListBooksInput{
		Page:     page,
		Limit:    limit,
		Q:        q,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     sort,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, out)
}

func (h *BookHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	b, err := h.uc.GetBookDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, b)
}

func (h *BookHandler) adminCreate(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	var req AdminBookRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	id, err := h.uc.AdminCreateBook(c.Request().Context(), userID, usecase.AdminCreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusCreated, map[string]int64{"id": id})
}

func (h *BookHandler) adminUpdate(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	var req AdminBookRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	if err := h.uc.AdminUpdateBook(c.Request().Context(), userID, id, usecase.AdminCreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	}); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, map[string]int64{"id": id})
}

func (h *BookHandler) adminDelete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return respondError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	if err := h.uc.AdminDeleteBook(c.Request().Context(), userID, id); err != nil {
		return respondError(c, err)
	}

	return respondOK(c, http.StatusOK, map[string]int64{"id": id})
}
