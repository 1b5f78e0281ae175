package server

import (
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Book.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e, cfg)
	h.GuestCart.RegisterRoutes(e)
	h.Review.RegisterRoutes(e, cfg)
	h.Flashsale.RegisterRoutes(e, cfg)
	h.Events.RegisterRoutes(e)
}
