package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beacon/internal/cache"
	"beacon/internal/config"
	"beacon/internal/extractor"
	"beacon/internal/gazetteer"
	"beacon/internal/geocode"
	"beacon/internal/logger"
	"beacon/internal/models"
	"beacon/internal/pipeline"
	"beacon/internal/server"
	"beacon/internal/sources"
	"beacon/internal/store"
)

func main() {
	logger.Init()
	defer logger.Log.Info("Application stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Log.Fatalf("Config load error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Config validation error: %v", err)
	}

	keys := config.KeysFromEnv()
	if !keys.Any() {
		logger.Log.Warn("No provider API keys configured, all fetches will fail")
	}

	// Статические данные и конвейер
	gaz := gazetteer.New()
	ext := extractor.New(gaz)
	geo := geocode.New(gaz, cfg.NominatimURL, cfg.UserAgent)

	srcs := []sources.Source{
		sources.NewNewsAPI(keys.NewsAPI),
		sources.NewGNews(keys.GNews),
		sources.NewMediaStack(keys.MediaStack),
		sources.NewTheNewsAPI(keys.TheNewsAPI),
	}
	pipe := pipeline.New(srcs, ext, geo)

	newsCache := cache.New(pipe.FetchAndProcess, cfg.CacheTTL())

	// Опциональный архив в Postgres
	var archive *store.Store
	if cfg.DatabaseURL != "" {
		archive, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Log.Fatalf("DB connection error: %v", err)
		}
		defer archive.Close()

		if err := archive.Migrate(ctx); err != nil {
			logger.Log.Fatalf("DB migration error: %v", err)
		}

		newsCache.OnRefresh(func(articles []models.NewsArticle) {
			saveCtx, saveCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer saveCancel()
			if err := archive.SaveArticles(saveCtx, articles); err != nil {
				logger.Log.Errorf("Archive save failed: %v", err)
			}
		})
	}

	// HTTP сервер
	srv := server.NewServer(newsCache, pipe, gaz, keys, archive)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Router(),
	}

	go func() {
		logger.Log.Infof("Starting HTTP server on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	ctxShutdown, cancelShutdown := context.WithTimeout(ctx, 5*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatalf("Forced shutdown: %v", err)
	}
}
