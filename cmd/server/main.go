package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-shop/internal/auth"
	"github.com/iliyamo/online-shop/internal/config"
	"github.com/iliyamo/online-shop/internal/database"
	"github.com/iliyamo/online-shop/internal/handler"
	"github.com/iliyamo/online-shop/internal/middleware"
	"github.com/iliyamo/online-shop/internal/queue"
	"github.com/iliyamo/online-shop/internal/repository"
	"github.com/iliyamo/online-shop/internal/router"
	"github.com/iliyamo/online-shop/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	customers := repository.NewCustomerRepo(db)
	products := repository.NewProductRepo(db)
	orders := repository.NewOrderRepo(db)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.AccessTTLMin)*time.Minute)
	authSvc, err := service.NewAuthService(customers, issuer, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}

	e := echo.New()
	router.Register(e,
		handler.NewAuthHandler(authSvc),
		handler.NewProductHandler(products),
		handler.NewCustomerHandler(customers, cfg.BcryptCost),
		handler.NewOrderHandler(orders, service.NewOrderEvents()),
		middleware.Auth(issuer, customers),
		middleware.Cache(config.LoadCacheConfig(), rdb),
	)

	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
