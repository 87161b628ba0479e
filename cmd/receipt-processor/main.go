// Package main запускает HTTP-сервер сервиса обработки чеков.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/receipt-processor/internal/config"
	"github.com/mmeshcher/receipt-processor/internal/handler"
	"github.com/mmeshcher/receipt-processor/internal/metrics"
	"github.com/mmeshcher/receipt-processor/internal/repository"
	"github.com/mmeshcher/receipt-processor/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		sugar.Fatalw("storage initialization error", "storage", cfg.StorageBackend, "error", err.Error())
	}

	svc := service.NewService(repo)
	defer svc.Close()

	h := handler.NewHandler(svc, logger, metrics.New(), cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.SetupRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting receipt processor", "addr", cfg.Addr(), "storage", cfg.StorageBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Остановка сервера по сигналу или при ошибке в другой горутине
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

func openRepository(ctx context.Context, cfg *config.Config) (service.Repository, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		return repository.NewPostgresRepository(ctx, cfg.DatabaseURI)
	case config.StorageRedis:
		return repository.NewRedisRepository(ctx, cfg.RedisAddress)
	default:
		return repository.NewMemoryRepository(), nil
	}
}
