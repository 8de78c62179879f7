package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bakery/internal/backend"
	"bakery/internal/cache"
	"bakery/internal/catalog"
	"bakery/internal/config"
	httpapi "bakery/internal/http"
	"bakery/internal/logging"
	"bakery/internal/repository"
	"bakery/internal/service"

	_ "bakery/docs"
)

// @title           Bakery storefront API
// @version         1.0
// @description     Catalog, session carts with WhatsApp checkout, and an admin proxy to the bakery backend.
// @host            localhost:9091
// @BasePath        /api/v1
// @securityDefinitions.basic BasicAuth
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	client := backend.NewClient(cfg.BackendURL, cfg.CatalogPath, cfg.BackendTimeout, logger.Named("backend"))

	storeOpts := []catalog.Option{catalog.WithLogger(logger.Named("catalog"))}
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		storeOpts = append(storeOpts, catalog.WithCache(cache.NewRedisSnapshotCache(rdb, cfg.SnapshotTTL)))
		logger.Info("catalog snapshot cache enabled", zap.String("redis", cfg.RedisAddr))
	}
	store := catalog.NewStore(catalog.NewBackendSource(client, cfg.ImageBasePath), storeOpts...)
	sessions := repository.NewMemorySessions()

	catalogSvc := service.NewCatalogService(store)
	cartSvc := service.NewCartService(sessions, store, cfg.WhatsAppPhone, logger.Named("cart"))

	opts := httpapi.Options{Logger: logger.Named("http"), SecureCookies: !cfg.Dev}
	var adminSvc *service.AdminService
	if cfg.AdminEnabled() {
		adminSvc = service.NewAdminService(client, store, logger.Named("admin"))
		opts.AdminAccounts = gin.Accounts{cfg.AdminUser: cfg.AdminPassword}
	} else {
		logger.Warn("admin routes disabled: BAKERY_ADMIN_USER/BAKERY_ADMIN_PASSWORD not set")
	}
	if cfg.WhatsAppPhone == "" {
		logger.Warn("BAKERY_WHATSAPP_PHONE not set: checkout links will open contact picker")
	}

	srv := httpapi.NewServer(catalogSvc, cartSvc, adminSvc, opts)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// readers see Loading until the first fetch settles
	go store.Initialize(ctx)
	go evictIdleCarts(ctx, sessions, cfg.SessionIdleTTL, logger.Named("janitor"))

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis close", zap.Error(err))
		}
	}
	logger.Info("stopped")
}

// evictIdleCarts периодически выбрасывает брошенные корзины
func evictIdleCarts(ctx context.Context, sessions repository.SessionRepository, idle time.Duration, log *zap.Logger) {
	if idle <= 0 {
		return
	}
	interval := idle / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := sessions.EvictIdle(ctx, now.Add(-idle))
			if err != nil {
				log.Warn("evict idle carts", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("evicted idle carts", zap.Int("count", n))
			}
		}
	}
}
