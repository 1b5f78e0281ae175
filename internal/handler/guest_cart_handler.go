package handler

import (
	"net/http"
	"strconv"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
)

const cartTokenHeader = "X-Cart-Token"

// 未ログインカート。トークンはX-Cart-Tokenで持ち回る。
type GuestCartHandler struct {
	uc *usecase.GuestCartUsecase
}

func NewGuestCartHandler(uc *usecase.GuestCartUsecase) *GuestCartHandler {
	return &GuestCartHandler{uc: uc}
}

type GuestCartAddRequest struct {
	BookID   int64 `json:"book_id"`
	Quantity int64 `json:"quantity"`
}

type GuestCartUpdateRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *GuestCartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/guest-cart")

	g.GET("", h.getCart)
	g.POST("", h.addItem)
	g.PUT("/:bookId", h.updateItem)
	g.DELETE("/:bookId", h.removeItem)
	g.DELETE("", h.clearCart)
}

func (h *GuestCartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), c.Request().Header.Get(cartTokenHeader))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuestCartHandler) addItem(c echo.Context) error {
	var req GuestCartAddRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), c.Request().Header.Get(cartTokenHeader), req.BookID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuestCartHandler) updateItem(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid book id"})
	}

	var req GuestCartUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateItem(c.Request().Context(), c.Request().Header.Get(cartTokenHeader), bookID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuestCartHandler) removeItem(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid book id"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), c.Request().Header.Get(cartTokenHeader), bookID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GuestCartHandler) clearCart(c echo.Context) error {
	out, err := h.uc.ClearCart(c.Request().Context(), c.Request().Header.Get(cartTokenHeader))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
