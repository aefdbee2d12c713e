package main

import (
	"context"

	"tunitest/internal/cart"
	"tunitest/internal/config"
	"tunitest/internal/domain/model"
	"tunitest/internal/handler"
	"tunitest/internal/infra/db"
	"tunitest/internal/infra/kafka"
	"tunitest/internal/infra/redisx"
	infraRepo "tunitest/internal/infra/repository"
	"tunitest/internal/metrics"
	"tunitest/internal/server"
	"tunitest/internal/usecase"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warn(".env not loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if cfg.GoEnv == "prod" {
		log.SetFormatter(&log.JSONFormatter{})
	}

	ctx := context.Background()

	// DB
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("db connection failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Book{},
		&model.Slider{},
		&model.Order{},
		&model.Partner{},
		&model.AdminUser{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	// Repository
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	sliderRepo := infraRepo.NewSliderGormRepository(gormDB)
	partnerRepo := infraRepo.NewPartnerGormRepository(gormDB)
	adminRepo := infraRepo.NewAdminUserGormRepository(gormDB)

	// Cart backend: Redis when configured, process memory otherwise.
	var rdb *redis.Client
	var backend cart.Backend = cart.NewMemoryBackend()
	if cfg.RedisAddr != "" {
		rdb, err = redisx.NewClient(cfg)
		if err != nil {
			log.WithError(err).Fatal("redis connection failed")
		}
		backend = redisx.NewCartBackend(rdb)
		log.WithField("addr", cfg.RedisAddr).Info("carts backed by redis")
	} else {
		log.Info("carts kept in process memory")
	}

	carts := cart.NewManager(backend, cart.FeePolicy{
		DeliveryFee:   cfg.DeliveryFee,
		FreeThreshold: cfg.FreeDeliveryThreshold,
	})

	// Order event stream, optional.
	var events usecase.EventPublisher = kafka.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.WithError(err).Fatal("kafka connection failed")
		}
		defer producer.Close()
		events = producer
		log.WithField("brokers", cfg.KafkaBrokers).Info("order events enabled")
	}

	m := metrics.New()

	// Usecase
	bookUC := usecase.NewBookUsecase(bookRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, events, m)
	checkoutUC := usecase.NewCheckoutUsecase(orderUC, m)
	sliderUC := usecase.NewSliderUsecase(sliderRepo)
	partnerUC := usecase.NewPartnerUsecase(partnerRepo)
	authUC := usecase.NewAuthUsecase(adminRepo, cfg.JWTSecret)

	if err := authUC.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("admin seeding failed")
	}

	// Handler
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, server.Handlers{
		Book:     handler.NewBookHandler(bookUC),
		Slider:   handler.NewSliderHandler(sliderUC),
		Partner:  handler.NewPartnerHandler(partnerUC),
		Order:    handler.NewOrderHandler(orderUC),
		Cart:     handler.NewCartHandler(carts, bookUC, m),
		Checkout: handler.NewCheckoutHandler(carts, checkoutUC),
		Auth:     handler.NewAuthHandler(authUC),
		Health:   handler.NewHealthHandler(gormDB, rdb),
	})

	log.WithField("port", cfg.Port).Info("starting api")
	if err := server.Start(e, cfg); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
