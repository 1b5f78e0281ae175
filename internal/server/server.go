package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/handler"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth      *handler.AuthHandler
	Book      *handler.BookHandler
	Cart      *handler.CartHandler
	GuestCart *handler.GuestCartHandler
	Review    *handler.ReviewHandler
	Flashsale *handler.FlashsaleHandler
	Events    *handler.EventsHandler
}

// New はechoを組み立てる。ミドルウェアとルートはここで全部決まる。
func New(cfg config.Config, log *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(logger.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Cart-Token"},
		AllowCredentials: true,
	}))

	registerRoutes(e, cfg, h)
	return e
}

// Start はサーバを起動し、SIGINT/SIGTERMで猶予付き停止する。
func Start(e *echo.Echo, cfg config.Config, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	log.Info("server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
