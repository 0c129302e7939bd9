package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/uNik020/EWS-monitor-Backend/internal/api"
	"github.com/uNik020/EWS-monitor-Backend/internal/app"
	iauth "github.com/uNik020/EWS-monitor-Backend/internal/auth"
	"github.com/uNik020/EWS-monitor-Backend/internal/database"
	"github.com/uNik020/EWS-monitor-Backend/internal/notifications"
	"github.com/uNik020/EWS-monitor-Backend/pkg/logger"
)

const defaultShutdownTimeout = 15 * time.Second

// run boots the service and blocks until the context is cancelled or the
// listener fails.
func run(ctx context.Context, configPath string) error {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}

	cfg, err := app.LoadConfig(paths...)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := app.ConfigureLogging(cfg); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DatabaseOptions())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{
		Secret:         cfg.Auth.JWT.Secret,
		Issuer:         cfg.Auth.JWT.Issuer,
		AccessTokenTTL: cfg.Auth.JWT.TTL,
	})
	if err != nil {
		return err
	}

	verifier, err := iauth.NewStaticVerifier(cfg.Auth.Demo.Email, cfg.Auth.Demo.PasswordHash)
	if err != nil {
		return err
	}

	router, err := api.NewRouter(api.Dependencies{
		DB:              db,
		JWT:             jwtSvc,
		Verifier:        verifier,
		Hub:             notifications.NewHub(),
		AllowedOrigins:  corsOrigins(cfg),
		LoginRateLimit:  cfg.Server.RateLimit.Requests,
		LoginRateWindow: cfg.Server.RateLimit.Window,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithModule("server").Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.WithModule("server").Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// corsOrigins collapses the wildcard config to "allow all".
func corsOrigins(cfg *app.Config) []string {
	origins := cfg.Server.CORS.AllowedOrigins
	for _, origin := range origins {
		if origin == "*" {
			return nil
		}
	}
	return origins
}
