package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/changmai/sabang-qoo10-rincos/internal/config"
	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/handler"
	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/service"
	serverhttp "github.com/changmai/sabang-qoo10-rincos/server/http"
)

func main() {
	// .env только вне production; отсутствие файла не ошибка
	var envLoadErr error
	if os.Getenv("ENV") != "production" {
		envLoadErr = godotenv.Load()
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)
	if envLoadErr != nil && !errors.Is(envLoadErr, os.ErrNotExist) {
		logger.Warn().Err(envLoadErr).Msg(".env")
	}

	layout, err := config.LoadLayout(cfg.LayoutFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("layout")
	}

	// каталог грузится один раз; при ошибке сервис стартует, но /dr без загрузки H отвечает 503
	cat, catErr := service.LoadCatalogFile(cfg.CatalogFile, cfg.CatalogHeader, layout.Catalog)
	if catErr != nil {
		logger.Warn().Err(catErr).Str("file", cfg.CatalogFile).Msg("default catalog not loaded")
	} else {
		logger.Info().Str("file", cfg.CatalogFile).Int("entries", cat.Len()).Msg("default catalog loaded")
	}

	r := serverhttp.NewRouter(handler.Env{
		Cfg:        cfg,
		Layout:     layout,
		Catalog:    cat,
		CatalogErr: catErr,
		Logger:     logger,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r, ReadHeaderTimeout: 10 * time.Second}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
