package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Cheertaboi/storefront-service/internal/api"
	"github.com/Cheertaboi/storefront-service/internal/backend"
	"github.com/Cheertaboi/storefront-service/internal/cache"
	"github.com/Cheertaboi/storefront-service/internal/cart"
	"github.com/Cheertaboi/storefront-service/internal/config"
	"github.com/Cheertaboi/storefront-service/internal/metrics"
	"github.com/Cheertaboi/storefront-service/internal/notify"
	"github.com/Cheertaboi/storefront-service/internal/repository"
	"github.com/Cheertaboi/storefront-service/internal/service"
	"github.com/Cheertaboi/storefront-service/internal/session"
	"github.com/Cheertaboi/storefront-service/internal/storage"
	"github.com/Cheertaboi/storefront-service/pkg/db"
	"github.com/Cheertaboi/storefront-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(os.Stdout, cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

// openStorage connects the configured device storage. The returned closer
// releases its connection.
func openStorage(ctx context.Context, cfg config.Config) (storage.Storage, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		conn, err := db.NewPostgresConnection(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewDeviceStorageRepo(conn)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return repo, conn, nil
	case config.DriverRedis:
		client, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client, cfg.StorageTTL), client, nil
	default:
		return storage.NewMemory(), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}
	defer closer.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	bus := notify.NewBus()
	m.ObserveBus(bus)

	var sessionOpts []session.Option
	if cfg.SessionResetOnBoot {
		sessionOpts = append(sessionOpts, session.WithResetOnBoot())
	}
	carts := cart.NewStore(store, bus, log)
	sessions := session.NewStore(store, bus, log, sessionOpts...)
	stores := cache.NewStoreCache(cfg.StoreCacheTTL)

	client := backend.NewClient(backend.Config{BaseURL: cfg.BackendBaseURL, Timeout: cfg.BackendTimeout}, m, log)
	accounts := service.NewAccountService(client, sessions, carts, log)

	handler := api.NewRouter(api.Services{
		Accounts: accounts,
		Catalog:  service.NewCatalogService(client, stores, carts, log),
		Carts:    service.NewCartService(client, stores, carts, sessions, service.Pricing(cfg.CartPricing), log),
		Orders:   service.NewOrderService(client, carts, sessions, m, log),
		MyPage:   service.NewMyPageService(client, stores, sessions, accounts, cfg.Location, log),
	}, bus, api.Options{Gatherer: reg}, log)

	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler,
		ReadTimeout: 10 * time.Second,
		// WriteTimeout stays unset: /events streams for as long as the
		// browser keeps it open.
		IdleTimeout: 60 * time.Second,
		// Request contexts end on shutdown so open event streams return.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("starting storefront",
		"addr", cfg.Addr, "backend", client.BaseURL(), "storage", cfg.StorageDriver, "pricing", cfg.CartPricing)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	<-idleConnsClosed
	log.Info("server stopped")
	return nil
}
