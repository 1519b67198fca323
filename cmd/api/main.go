package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"handicraft-catalog/internal/cache"
	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/config"
	"handicraft-catalog/internal/handlers"
	"handicraft-catalog/internal/logger"
	"handicraft-catalog/internal/models"
	"handicraft-catalog/internal/repository"
	"handicraft-catalog/internal/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("❌ ", err)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal("❌ invalid log level: ", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pages *cache.Cache[models.ProductPage]
	if cfg.CacheTTL > 0 {
		pages = cache.New[models.ProductPage](cfg.CacheTTL)
		pages.StartCleanup(ctx, 5*time.Minute)
	}

	productRepo, err := repository.NewProductRepository(catalog.Seed(), pages)
	if err != nil {
		log.Fatal("❌ invalid catalog seed: ", err)
	}
	log.WithField("products", productRepo.Count()).Info("📦 Catalog loaded")

	router := routes.NewRouter(routes.Handlers{
		Products:  handlers.NewProductHandler(productRepo, cfg.DefaultSort, cfg.DefaultPageSize),
		Bags:      handlers.NewBagHandler(productRepo, repository.NewBagRepository()),
		Favorites: handlers.NewFavoritesHandler(productRepo, repository.NewFavoritesRepository()),
	}, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("🚀 Server running on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ server stopped: ", err)
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("❌ graceful shutdown failed: ", err)
	}
}
