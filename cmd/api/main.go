package main

import (
	"context"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/config"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/handler"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/infra/db"
	infraRepo "github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/infra/repository"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/logger"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/server"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/sse"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// 未ログインカートの保持期間
const guestCartTTL = 14 * 24 * time.Hour

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.Cart{},
		&model.CartItem{},
		&model.Review{},
		&model.FlashsaleCampaign{},
		&model.FlashsaleItem{},
		&model.AuditLog{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	redisClient, err := db.ConnectRedis(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}

	// repository
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	flashsaleRepo := infraRepo.NewFlashsaleGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	guestCartRepo := infraRepo.NewGuestCartRedisRepository(redisClient, guestCartTTL)

	hub := sse.NewHub()

	// usecase
	authUC := usecase.NewAuthUsecase(cfg, userRepo)
	bookUC := usecase.NewBookUsecase(bookRepo, auditRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, bookRepo, guestCartRepo)
	guestCartUC := usecase.NewGuestCartUsecase(guestCartRepo, bookRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, bookRepo, userRepo)
	flashsaleUC := usecase.NewFlashsaleUsecase(flashsaleRepo, bookRepo, auditRepo, hub, cfg.FlashsaleLocation)

	// handler
	h := server.Handlers{
		Auth:      handler.NewAuthHandler(authUC),
		Book:      handler.NewBookHandler(bookUC),
		Cart:      handler.NewCartHandler(cartUC),
		GuestCart: handler.NewGuestCartHandler(guestCartUC),
		Review:    handler.NewReviewHandler(reviewUC),
		Flashsale: handler.NewFlashsaleHandler(flashsaleUC),
		Events:    handler.NewEventsHandler(hub),
	}

	e := server.New(cfg, log, h)
	if err := server.Start(e, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
