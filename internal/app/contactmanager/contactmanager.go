package contactmanager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/contact-manager/internal/cache"
	"github.com/magabrotheeeer/contact-manager/internal/config"
	"github.com/magabrotheeeer/contact-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-manager/internal/lib/sl"
	"github.com/magabrotheeeer/contact-manager/internal/migrations"
	addressservice "github.com/magabrotheeeer/contact-manager/internal/services/address"
	contactservice "github.com/magabrotheeeer/contact-manager/internal/services/contact"
	userservice "github.com/magabrotheeeer/contact-manager/internal/services/user"
	"github.com/magabrotheeeer/contact-manager/internal/storage"
)

// App представляет HTTP-сервер с его ресурсами.
type App struct {
	server          *http.Server
	logger          *slog.Logger
	db              *storage.Storage
	redis           *cache.Cache
	shutdownTimeout time.Duration
}

// New подключается к PostgreSQL и Redis, применяет миграции и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	var (
		sessions userservice.Cache
		redis    *cache.Cache
	)
	if cfg.AddressRedis != "" {
		redis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		sessions = redis
		logger.Info("session cache enabled", slog.String("address", cfg.AddressRedis))
	}

	router := NewRouter(logger, cfg.RateLimit, middlewarectx.NewMetrics(), Services{
		Users:     userservice.NewUserService(db, sessions, cfg.CacheTTL, logger),
		Contacts:  contactservice.NewContactService(db, logger),
		Addresses: addressservice.NewAddressService(db, logger),
		Health:    db,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:          srv,
		logger:          logger,
		db:              db,
		redis:           redis,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
