package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/doggyworld/backend/internal/client"
	"github.com/doggyworld/backend/internal/config"
	"github.com/doggyworld/backend/internal/db"
	"github.com/doggyworld/backend/internal/handler"
	"github.com/doggyworld/backend/internal/service"
)

// @title DoggyWorld API
// @version 1.0
// @description Pet-adoption site backend: admin auth, adoption requests, blog posts and a minimal pet catalog.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments inject env directly.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	store, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		log.Fatalf("tokens: %v", err)
	}

	mailer := client.NewMailerFromConfig(cfg.Mail, cfg.Server.PublicBaseURL)
	if _, ok := mailer.(*client.DevMailer); ok {
		log.Printf("SMTP credentials not configured; using dev mail transport")
	}

	authSvc := service.NewAuthService(store, tokens, mailer, cfg.Server.ClientURL)
	if err := authSvc.EnsureAdmin(ctx, cfg.Seed); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	router := handler.NewRouter(cfg.Server, handler.Services{
		Auth:     authSvc,
		Adoption: service.NewAdoptionService(store, mailer, cfg.Mail.AlertTo),
		Post:     service.NewPostService(store),
		Product:  service.NewProductService(store),
		Mailer:   mailer,
	})

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
