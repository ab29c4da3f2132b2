package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/wardrobe/wardrobe-go/internal/config"
	"github.com/wardrobe/wardrobe-go/internal/crypto"
	"github.com/wardrobe/wardrobe-go/internal/handler"
	"github.com/wardrobe/wardrobe-go/internal/middleware"
	"github.com/wardrobe/wardrobe-go/internal/repository"
	"github.com/wardrobe/wardrobe-go/internal/seed"
	"github.com/wardrobe/wardrobe-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	issuer, err := crypto.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		slog.Error("token issuer setup failed", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := repository.Bootstrap(ctx, db); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewClothingItemRepository(db)

	if err := seed.EnsureDefaultCategories(ctx, categoryRepo); err != nil {
		slog.Error("category seed failed", "error", err)
		os.Exit(1)
	}
	if cfg.SeedFile != "" {
		if err := seed.ImportFile(ctx, cfg.SeedFile, categoryRepo, itemRepo); err != nil {
			slog.Warn("seed import failed", "file", cfg.SeedFile, "error", err)
		}
	}

	authService := service.NewAuthService(userRepo, issuer, cfg.AccessTokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	clothingService := service.NewClothingService(itemRepo, categoryRepo)
	clothingHandler := handler.NewClothingHandler(clothingService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/token", authHandler.HandleToken)
		r.Post("/users/", authHandler.HandleCreateUser)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(authService))
		r.Get("/clothing-items/", clothingHandler.HandleListItems)
		r.Get("/clothing-items/{item_id}/", clothingHandler.HandleGetItem)
		r.Put("/edit-clothing/{item_id}/", clothingHandler.HandleUpdateItem)
		r.Post("/new-clothing/", clothingHandler.HandleCreateItem)
		r.Get("/clothing-categories/", clothingHandler.HandleListCategories)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
