package main

import (
	"context"
	"log"

	"github.com/dmolina/shop-service/internal/auth"
	"github.com/dmolina/shop-service/internal/cart"
	"github.com/dmolina/shop-service/internal/config"
	"github.com/dmolina/shop-service/internal/db"
	"github.com/dmolina/shop-service/internal/item"
	"github.com/dmolina/shop-service/internal/member"
	"github.com/dmolina/shop-service/internal/order"
)

func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.PostgresDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("[main] %v", err)
	}
	pool, err := db.Connect(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[main] %v", err)
	}
	defer pool.Close()

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	members := member.NewPGRepo(pool)
	items := item.NewPGRepo(pool)
	carts := cart.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)

	memberSvc := member.NewService(members, cfg.BcryptCost)
	orderSvc := order.NewService(orders, items, carts)

	r := buildRouter(routerDeps{
		issuer:    issuer,
		members:   members,
		memberSvc: memberSvc,
		items:     items,
		carts:     carts,
		orderSvc:  orderSvc,
	})

	log.Printf("[main] shop-service listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
