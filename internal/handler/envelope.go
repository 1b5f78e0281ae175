package handler

import (
	"net/http"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api配下は全レスポンスをこの封筒に入れる。
// HTTPステータスとは別に、ドメインとしての成否をsuccessで伝える。
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

func respondOK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, Envelope{Success: false, Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal error"})
}

// /cartと/authは封筒なしの素のJSON（エラーはこの形）。
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// JWTミドルウェアが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get("user_id")
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// JWTミドルウェアが入れたroleを取り出す
func getUserRoleFromContext(c echo.Context) string {
	v := c.Get("user_role")
	role, _ := v.(string)
	return role
}
