// Package app wires configuration, storage, services, and the HTTP
// server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/macrolog/macrolog-backend/internal/adapter/postgres"
	"github.com/macrolog/macrolog-backend/internal/adapter/postgres/foodentry"
	"github.com/macrolog/macrolog-backend/internal/adapter/postgres/goalsettings"
	userrepo "github.com/macrolog/macrolog-backend/internal/adapter/postgres/user"
	"github.com/macrolog/macrolog-backend/internal/adapter/provider/anthropic"
	"github.com/macrolog/macrolog-backend/internal/auth"
	"github.com/macrolog/macrolog-backend/internal/config"
	"github.com/macrolog/macrolog-backend/internal/service/admin"
	"github.com/macrolog/macrolog-backend/internal/service/foodlog"
	"github.com/macrolog/macrolog-backend/internal/service/stats"
	"github.com/macrolog/macrolog-backend/internal/service/user"
	"github.com/macrolog/macrolog-backend/internal/transport/middleware"
	"github.com/macrolog/macrolog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires services and transport, and serves HTTP until
// the context is cancelled or a shutdown signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	entryRepo := foodentry.New(pool)
	settingsRepo := goalsettings.New(pool)
	usersRepo := userrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	analyzer := anthropic.New(logger, cfg.Analyzer)

	foodlogSvc := foodlog.NewService(logger, entryRepo, settingsRepo, analyzer, txManager)
	statsSvc := stats.NewService(logger, entryRepo, settingsRepo)
	userSvc := user.NewService(logger, usersRepo, settingsRepo, txManager, jwtManager, cfg.Auth)
	adminSvc := admin.NewService(logger, usersRepo, entryRepo, settingsRepo)

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(userSvc, logger),
		Entries:  rest.NewEntriesHandler(foodlogSvc, logger),
		Stats:    rest.NewStatsHandler(statsSvc, logger),
		Settings: rest.NewSettingsHandler(userSvc, logger),
		Admin:    rest.NewAdminHandler(adminSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Profile:  userSvc,
		Log:      logger,
	})

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(),
		middleware.Auth(jwtManager),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
